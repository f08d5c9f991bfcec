package usecase

import (
	"testing"
	"time"

	"main/model"
)

func TestBuildRawMap(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := BuildRawMap(nil); len(got) != 0 {
			t.Errorf("expected empty map, got %d entries", len(got))
		}
	})

	t.Run("GroupsByDateAndHabit", func(t *testing.T) {
		ts := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
		records := []*model.Record{
			{RecordID: "r1", UserID: "u1", HabitID: "h1", Date: "2025-03-10", Completed: true, Timestamp: ts},
			{RecordID: "r2", UserID: "u1", HabitID: "h2", Date: "2025-03-10", Completed: false, Timestamp: ts},
			{RecordID: "r3", UserID: "u1", HabitID: "h1", Date: "2025-03-11", Completed: true, Timestamp: ts},
		}

		raw := BuildRawMap(records)

		if len(raw) != 2 {
			t.Fatalf("expected 2 dates, got %d", len(raw))
		}
		if len(raw["2025-03-10"]) != 2 {
			t.Errorf("expected 2 habits on 2025-03-10, got %d", len(raw["2025-03-10"]))
		}
		if !raw["2025-03-10"]["h1"].Completed {
			t.Error("h1 should be completed on 2025-03-10")
		}
		if raw["2025-03-10"]["h2"].Completed {
			t.Error("h2 should be incomplete on 2025-03-10")
		}
		if !raw["2025-03-10"]["h1"].Timestamp.Equal(ts) {
			t.Error("record timestamp not carried through")
		}
		if len(raw["2025-03-11"]) != 1 {
			t.Errorf("expected 1 habit on 2025-03-11, got %d", len(raw["2025-03-11"]))
		}
	})

	t.Run("LaterRecordWinsForSameKey", func(t *testing.T) {
		records := []*model.Record{
			{RecordID: "r1", UserID: "u1", HabitID: "h1", Date: "2025-03-10", Completed: false},
			{RecordID: "r2", UserID: "u1", HabitID: "h1", Date: "2025-03-10", Completed: true},
		}

		raw := BuildRawMap(records)
		if !raw["2025-03-10"]["h1"].Completed {
			t.Error("last record in input order should win")
		}
	})
}
