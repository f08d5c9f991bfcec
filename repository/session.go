package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	return &SessionRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("sessions"),
	}
}

func (r *SessionRepo) CreateSession(session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.UserID == "" {
		utils.TrackError("database", "invalid_session_data")
		return fmt.Errorf("invalid session data: missing required fields")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) GetSession(sessionID string) (*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	var session model.Session
	err := r.MongoCollection.FindOne(context.Background(),
		bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "session_fetch_failed")
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepo) UpdateSession(session *model.Session) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	_, err := r.MongoCollection.UpdateOne(context.Background(),
		bson.M{"session_id": session.SessionID},
		bson.M{"$set": bson.M{
			"last_activity_at": session.LastActivityAt,
			"is_active":        session.IsActive,
		}})
	if err != nil {
		utils.TrackError("database", "session_update_failed")
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepo) CountActiveSessions(userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "sessions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(context.Background(),
		bson.M{"user_id": userID, "is_active": true, "expires_at": bson.M{"$gt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// EndLeastActiveSession deactivates the session with the oldest activity,
// enforcing the per-user session cap.
func (r *SessionRepo) EndLeastActiveSession(userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID, "is_active": true})
	if err != nil {
		return err
	}
	defer cursor.Close(context.Background())

	var sessions []*model.Session
	if err := cursor.All(context.Background(), &sessions); err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActivityAt.Before(sessions[j].LastActivityAt)
	})

	_, err = r.MongoCollection.UpdateOne(context.Background(),
		bson.M{"session_id": sessions[0].SessionID},
		bson.M{"$set": bson.M{"is_active": false}})
	return err
}

// EndAllUserSessions deactivates every session for a user (logout-all).
func (r *SessionRepo) EndAllUserSessions(userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(context.Background(),
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *SessionRepo) GetActiveSessions(userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(context.Background(),
		bson.M{"user_id": userID, "is_active": true, "expires_at": bson.M{"$gt": time.Now()}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var sessions []*model.Session
	if err := cursor.All(context.Background(), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepo) DeleteSession(sessionID string) error {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(context.Background(),
		bson.M{"session_id": sessionID})
	return err
}
