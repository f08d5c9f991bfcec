package usecase

import (
	"errors"
	"log"
	"strings"

	"main/dto"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

const defaultHabitColor = "#4ade80"

type HabitsService struct {
	HabitsRepo  *repository.HabitsRepo
	RecordsRepo *repository.RecordsRepo
}

func (s *HabitsService) validateHabitName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("habit name is required")
	}
	if len(name) > 100 {
		return "", errors.New("habit name exceeds maximum length")
	}
	return name, nil
}

func (s *HabitsService) CreateHabit(userID string, req *dto.CreateHabitRequest) (*model.Habit, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	name, err := s.validateHabitName(req.Name)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = defaultHabitColor
	}
	if !utils.ValidateHabitColor(color) {
		return nil, errors.New("invalid habit color")
	}

	habit := &model.Habit{
		HabitID: utils.GenerateID(),
		UserID:  userID,
		Name:    name,
		Color:   color,
	}

	if err := s.HabitsRepo.CreateHabit(habit); err != nil {
		return nil, err
	}

	utils.TrackHabitOperation("create")
	s.invalidateAnalytics(userID)
	return habit, nil
}

func (s *HabitsService) ListHabits(userID string) ([]*model.Habit, error) {
	return s.HabitsRepo.GetUserHabits(userID)
}

func (s *HabitsService) UpdateHabit(userID, habitID string, req *dto.UpdateHabitRequest) (*model.Habit, error) {
	name, err := s.validateHabitName(req.Name)
	if err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = defaultHabitColor
	}
	if !utils.ValidateHabitColor(color) {
		return nil, errors.New("invalid habit color")
	}

	updates := &model.Habit{Name: name, Color: color}
	if err := s.HabitsRepo.UpdateHabit(habitID, userID, updates); err != nil {
		return nil, err
	}

	utils.TrackHabitOperation("update")
	s.invalidateAnalytics(userID)
	return s.HabitsRepo.GetHabit(habitID, userID)
}

// DeleteHabit removes the habit and cascades to every record referencing it,
// so the habit disappears retroactively from past days' aggregates.
func (s *HabitsService) DeleteHabit(userID, habitID string) error {
	if err := s.HabitsRepo.DeleteHabit(habitID, userID); err != nil {
		return err
	}

	if _, err := s.RecordsRepo.DeleteHabitRecords(userID, habitID); err != nil {
		log.Printf("Warning: failed to cascade record deletion for habit %s: %v", habitID, err)
		return err
	}

	utils.TrackHabitOperation("delete")
	s.invalidateAnalytics(userID)
	return nil
}

func (s *HabitsService) invalidateAnalytics(userID string) {
	if services.GlobalAnalyticsCache == nil {
		return
	}
	if err := services.GlobalAnalyticsCache.Invalidate(userID); err != nil {
		log.Printf("Warning: failed to invalidate analytics cache: %v", err)
	}
}
