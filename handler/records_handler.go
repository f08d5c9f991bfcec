package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetUserRecordsHandler(c *gin.Context, recordsService *usecase.RecordsService) {
	userID := c.GetString("user_id")

	records, err := recordsService.ListRecords(userID)
	if err != nil {
		utils.TrackError("database", "record_list_failed")
		utils.InternalError(c, "failed to load records")
		return
	}
	if records == nil {
		records = []*model.Record{}
	}

	utils.Success(c, gin.H{"records": records})
}

// SaveDayHandler replaces the completion set for one date. The body carries
// the full per-habit state; anything previously stored for the date is
// dropped in the same transaction.
func SaveDayHandler(c *gin.Context, recordsService *usecase.RecordsService) {
	userID := c.GetString("user_id")
	date := c.Param("date")

	var req dto.SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	if err := recordsService.SaveDay(userID, date, req.Habits); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"message": "day saved",
		"date":    date,
	})
}
