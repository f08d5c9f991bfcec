package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func CreateHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")

	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	habit, err := habitsService.CreateHabit(userID, &req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, habit)
}

func GetUserHabitsHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")

	habits, err := habitsService.ListHabits(userID)
	if err != nil {
		utils.TrackError("database", "habit_list_failed")
		utils.InternalError(c, "failed to load habits")
		return
	}
	if habits == nil {
		habits = []*model.Habit{}
	}

	utils.Success(c, gin.H{"habits": habits})
}

func UpdateHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	var req dto.UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	habit, err := habitsService.UpdateHabit(userID, habitID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, habit)
}

func DeleteHabitHandler(c *gin.Context, habitsService *usecase.HabitsService) {
	userID := c.GetString("user_id")
	habitID := c.Param("id")

	if err := habitsService.DeleteHabit(userID, habitID); err != nil {
		if errors.Is(err, repository.ErrHabitNotFound) {
			utils.NotFound(c, "habit not found")
			return
		}
		utils.TrackError("database", "habit_delete_failed")
		utils.InternalError(c, "failed to delete habit")
		return
	}

	utils.Success(c, gin.H{"message": "habit deleted"})
}
