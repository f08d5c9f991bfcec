package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type RecordsService struct {
	RecordsRepo *repository.RecordsRepo
	HabitsRepo  *repository.HabitsRepo
}

func (s *RecordsService) ListRecords(userID string) ([]*model.Record, error) {
	return s.RecordsRepo.GetUserRecords(userID)
}

// SaveDay replaces the full completion set for one date. Completion flags for
// habit ids the user does not own are rejected; habits missing from the
// request are simply not stored and read back as incomplete.
func (s *RecordsService) SaveDay(userID, date string, completions map[string]bool) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q", date)
	}

	habits, err := s.HabitsRepo.GetUserHabits(userID)
	if err != nil {
		return err
	}
	owned := make(map[string]bool, len(habits))
	for _, h := range habits {
		owned[h.HabitID] = true
	}

	now := time.Now()
	records := make([]*model.Record, 0, len(completions))
	for habitID, completed := range completions {
		if !owned[habitID] {
			return fmt.Errorf("unknown habit id %q", habitID)
		}
		records = append(records, &model.Record{
			RecordID:  utils.GenerateID(),
			UserID:    userID,
			HabitID:   habitID,
			Date:      date,
			Completed: completed,
			Timestamp: now,
		})
	}

	if err := s.RecordsRepo.ReplaceDay(userID, date, records); err != nil {
		return err
	}

	s.invalidateAnalytics(userID)
	return nil
}

// BuildRawMap keys records into the date -> habit -> status map the analytics
// aggregation consumes.
func BuildRawMap(records []*model.Record) map[string]map[string]model.RecordStatus {
	raw := make(map[string]map[string]model.RecordStatus)
	for _, rec := range records {
		day, ok := raw[rec.Date]
		if !ok {
			day = make(map[string]model.RecordStatus)
			raw[rec.Date] = day
		}
		day[rec.HabitID] = model.RecordStatus{
			Completed: rec.Completed,
			Timestamp: rec.Timestamp,
		}
	}
	return raw
}

func (s *RecordsService) invalidateAnalytics(userID string) {
	if services.GlobalAnalyticsCache == nil {
		return
	}
	if err := services.GlobalAnalyticsCache.Invalidate(userID); err != nil {
		log.Printf("Warning: failed to invalidate analytics cache: %v", err)
	}
}
