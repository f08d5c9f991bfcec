package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecordsRepo struct {
	Client          *mongo.Client
	MongoCollection *mongo.Collection
}

func GetRecordsRepo(client *mongo.Client) *RecordsRepo {
	return &RecordsRepo{
		Client:          client,
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("records"),
	}
}

// GetUserRecords returns every record for the user, keyed downstream into the
// per-date raw map the analytics aggregation consumes.
func (r *RecordsRepo) GetUserRecords(userID string) ([]*model.Record, error) {
	timer := utils.TrackDBOperation("find", "records")
	defer timer.ObserveDuration()

	var records []*model.Record
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "record_list_failed")
		return nil, err
	}
	defer cursor.Close(context.Background())

	if err = cursor.All(context.Background(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordsRepo) GetDayRecords(userID, date string) ([]*model.Record, error) {
	timer := utils.TrackDBOperation("find", "records")
	defer timer.ObserveDuration()

	var records []*model.Record
	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID, "date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	if err = cursor.All(context.Background(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceDay swaps out all of a user's records for one date inside a single
// transaction, so a crash mid-save can never leave the date half-written.
func (r *RecordsRepo) ReplaceDay(userID, date string, records []*model.Record) error {
	timer := utils.TrackDBOperation("replace_day", "records")
	defer timer.ObserveDuration()

	if userID == "" {
		return errors.New("user ID is required")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	for _, rec := range records {
		if rec.UserID != userID || rec.Date != date {
			utils.TrackError("database", "record_scope_mismatch")
			return errors.New("record does not belong to the day being saved")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := r.Client.StartSession()
	if err != nil {
		utils.TrackError("database", "session_start_failed")
		return fmt.Errorf("failed to start transaction session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.MongoCollection.DeleteMany(sc,
			bson.M{"user_id": userID, "date": date}); err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		docs := make([]interface{}, 0, len(records))
		for _, rec := range records {
			docs = append(docs, rec)
		}
		if _, err := r.MongoCollection.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		utils.TrackError("database", "day_replace_failed")
		return fmt.Errorf("failed to replace day records: %w", err)
	}

	utils.DaySavesTotal.Inc()
	return nil
}

// DeleteHabitRecords removes every record referencing a habit, used when a
// habit is deleted.
func (r *RecordsRepo) DeleteHabitRecords(userID, habitID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "records")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(context.Background(),
		bson.M{"user_id": userID, "habit_id": habitID})
	if err != nil {
		utils.TrackError("database", "record_cascade_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *RecordsRepo) DeleteUserRecords(userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "records")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(context.Background(),
		bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
