// internal/domain/exercise.go
package domain

// Exercise is one entry of a user's personal exercise list.
type Exercise struct {
	ID          int    `json:"id" bson:"_id"`
	OwnerID     int    `json:"ownerId" bson:"ownerId"`
	Name        string `json:"name" bson:"name"`
	Days        DaySet `json:"days" bson:"days"` // Weekdays the exercise is scheduled on
	Description string `json:"description,omitempty" bson:"description"`
}

// ScheduledOn reports whether the exercise is planned for the given weekday.
func (e Exercise) ScheduledOn(d Weekday) bool {
	return e.Days.Has(d)
}

// ExerciseDraft carries the fields sent to the remote API on create and update.
type ExerciseDraft struct {
	OwnerID     int
	Name        string
	Days        DaySet
	Description string
}

// CompletionRecord marks an exercise as done on a calendar date.
// The record is its own key: at most one exists per (ExerciseID, Date).
type CompletionRecord struct {
	ExerciseID int  `json:"exerciseId"`
	Date       Date `json:"date"`
}
