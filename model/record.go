package model

import "time"

// DateLayout is the calendar-date format records are keyed by. Records carry
// no time component; the toggle instant lives in Timestamp.
const DateLayout = "2006-01-02"

type Record struct {
	RecordID  string    `bson:"record_id" json:"record_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	HabitID   string    `bson:"habit_id" json:"habit_id"`
	Date      string    `bson:"date" json:"date"`
	Completed bool      `bson:"completed" json:"completed"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// RecordStatus is the per-habit slice of a single day, as consumed by the
// analytics aggregation.
type RecordStatus struct {
	Completed bool      `bson:"completed" json:"completed"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
