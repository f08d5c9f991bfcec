package usecase

import (
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// CreateUser registers a new account: unique username, hashed password,
// generated id.
func (s *UserService) CreateUser(user *model.User) error {
	existing, err := s.UsersRepo.FindUserByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	hashed, err := services.HashPassword(user.Password)
	if err != nil {
		return err
	}

	user.UserID = utils.GenerateID()
	user.Password = hashed
	user.CreatedAt = time.Now()
	user.TwoFactorEnabled = false

	return s.UsersRepo.AddUser(user)
}

func (s *UserService) FindUserByUsername(username string) (*model.User, error) {
	return s.UsersRepo.FindUserByUsername(username)
}

func (s *UserService) FindUser(userID string) (*model.User, error) {
	return s.UsersRepo.FindUser(userID)
}
