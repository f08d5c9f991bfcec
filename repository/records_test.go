package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestReplaceDayValidation(t *testing.T) {
	// Validation happens before any database access.
	repo := &RecordsRepo{}

	t.Run("EmptyUserID", func(t *testing.T) {
		if err := repo.ReplaceDay("", "2025-03-10", nil); err == nil {
			t.Error("expected error for empty user id")
		}
	})

	t.Run("InvalidDate", func(t *testing.T) {
		for _, date := range []string{"", "03/10/2025", "2025-3-10", "not-a-date"} {
			if err := repo.ReplaceDay("u1", date, nil); err == nil {
				t.Errorf("expected error for date %q", date)
			}
		}
	})

	t.Run("ScopeMismatch", func(t *testing.T) {
		wrongUser := []*model.Record{
			{RecordID: "r1", UserID: "someone-else", HabitID: "h1", Date: "2025-03-10"},
		}
		if err := repo.ReplaceDay("u1", "2025-03-10", wrongUser); err == nil {
			t.Error("expected error for record owned by another user")
		}

		wrongDate := []*model.Record{
			{RecordID: "r1", UserID: "u1", HabitID: "h1", Date: "2025-03-11"},
		}
		if err := repo.ReplaceDay("u1", "2025-03-10", wrongDate); err == nil {
			t.Error("expected error for record on another date")
		}
	})
}

// liveRecordsRepo connects to the Mongo deployment named by MONGO_URI, which
// must be a replica set since ReplaceDay runs a transaction. Skipped when
// MONGO_URI is unset.
func liveRecordsRepo(t *testing.T) *RecordsRepo {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set, skipping live database test")
	}
	if os.Getenv("MONGO_DB") == "" {
		os.Setenv("MONGO_DB", "tohabits_test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not reachable: %v", err)
	}

	t.Cleanup(func() {
		client.Database(os.Getenv("MONGO_DB")).Collection("records").
			DeleteMany(context.Background(), bson.M{"user_id": "records-test-user"})
		client.Disconnect(context.Background())
	})

	return GetRecordsRepo(client)
}

func TestReplaceDayLive(t *testing.T) {
	repo := liveRecordsRepo(t)
	userID := "records-test-user"
	date := "2025-03-10"

	mkRecord := func(id, habitID string, completed bool) *model.Record {
		return &model.Record{
			RecordID:  id,
			UserID:    userID,
			HabitID:   habitID,
			Date:      date,
			Completed: completed,
			Timestamp: time.Now(),
		}
	}

	// First save writes two records.
	first := []*model.Record{
		mkRecord("r1", "h1", true),
		mkRecord("r2", "h2", false),
	}
	if err := repo.ReplaceDay(userID, date, first); err != nil {
		t.Fatalf("first ReplaceDay failed: %v", err)
	}

	got, err := repo.GetDayRecords(userID, date)
	if err != nil {
		t.Fatalf("GetDayRecords failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records after first save, got %d", len(got))
	}

	// Second save fully replaces the day, dropping h2.
	second := []*model.Record{mkRecord("r3", "h1", false)}
	if err := repo.ReplaceDay(userID, date, second); err != nil {
		t.Fatalf("second ReplaceDay failed: %v", err)
	}

	got, err = repo.GetDayRecords(userID, date)
	if err != nil {
		t.Fatalf("GetDayRecords failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record after replace, got %d", len(got))
	}
	if got[0].HabitID != "h1" || got[0].Completed {
		t.Errorf("unexpected surviving record: %+v", got[0])
	}

	// Saving an empty set clears the day.
	if err := repo.ReplaceDay(userID, date, nil); err != nil {
		t.Fatalf("empty ReplaceDay failed: %v", err)
	}
	got, err = repo.GetDayRecords(userID, date)
	if err != nil {
		t.Fatalf("GetDayRecords failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected day cleared, got %d records", len(got))
	}
}
