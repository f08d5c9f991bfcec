package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrHabitNotFound = errors.New("habit not found")

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	return &HabitsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("habits"),
	}
}

func (r *HabitsRepo) CreateHabit(habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	habit.CreatedAt = time.Now()
	habit.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(context.Background(), habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
	}
	return err
}

// GetUserHabits returns the user's full current habit list, oldest first.
// Analytics always joins against this list, never a historical snapshot.
func (r *HabitsRepo) GetUserHabits(userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habits []*model.Habit
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "habit_list_failed")
		return nil, err
	}
	defer cursor.Close(context.Background())

	if err = cursor.All(context.Background(), &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *HabitsRepo) GetHabit(habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"habit_id": habitID, "user_id": userID}).Decode(&habit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return &habit, nil
}

func (r *HabitsRepo) UpdateHabit(habitID, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"habit_id": habitID,
		"user_id":  userID,
	}
	update := bson.M{
		"$set": bson.M{
			"name":       updates.Name,
			"color":      updates.Color,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(context.Background(), filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *HabitsRepo) DeleteHabit(habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(context.Background(),
		bson.M{"habit_id": habitID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrHabitNotFound
	}
	return nil
}

func (r *HabitsRepo) DeleteUserHabits(userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(context.Background(),
		bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *HabitsRepo) CountUserHabits(userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "habits")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(context.Background(),
		bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
