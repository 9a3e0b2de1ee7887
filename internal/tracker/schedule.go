package tracker

import (
	"math"

	"fittracker/fitness-app/internal/domain"
)

// ScheduledOn returns the exercises scheduled for the weekday, keeping the
// order of the source list.
func ScheduledOn(exercises []domain.Exercise, day domain.Weekday) []domain.Exercise {
	scheduled := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if ex.ScheduledOn(day) {
			scheduled = append(scheduled, ex)
		}
	}
	return scheduled
}

// Progress is the completion state of one calendar date.
type Progress struct {
	Date      domain.Date `json:"date"`
	Completed int         `json:"completed"`
	Scheduled int         `json:"scheduled"`
}

// Ratio is Completed/Scheduled, and 0 when nothing is scheduled.
func (p Progress) Ratio() float64 {
	if p.Scheduled == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Scheduled)
}

// Percent is the ratio rounded to the nearest whole percent.
func (p Progress) Percent() int {
	return int(math.Round(p.Ratio() * 100))
}

// Done reports whether every scheduled exercise has been completed.
func (p Progress) Done() bool {
	return p.Scheduled > 0 && p.Completed == p.Scheduled
}

// ProgressOf computes the progress for date from the exercise list and the
// completion set. Records for exercises not scheduled on date's weekday
// are ignored.
func ProgressOf(exercises []domain.Exercise, completions *CompletionSet, date domain.Date) Progress {
	scheduled := ScheduledOn(exercises, date.Weekday())
	p := Progress{Date: date, Scheduled: len(scheduled)}
	for _, ex := range scheduled {
		if completions.Has(ex.ID, date) {
			p.Completed++
		}
	}
	return p
}
