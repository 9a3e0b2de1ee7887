package tracker

import (
	"sort"

	"fittracker/fitness-app/internal/domain"
)

// CompletionSet holds completion records keyed by (exercise, date).
// It is not safe for concurrent use; Tracker guards it.
type CompletionSet struct {
	records map[domain.CompletionRecord]struct{}
}

func NewCompletionSet() *CompletionSet {
	return &CompletionSet{records: make(map[domain.CompletionRecord]struct{})}
}

func (s *CompletionSet) Has(exerciseID int, date domain.Date) bool {
	if s == nil {
		return false
	}
	_, ok := s.records[domain.CompletionRecord{ExerciseID: exerciseID, Date: date}]
	return ok
}

// Toggle flips membership of (exerciseID, date) and returns the new state.
func (s *CompletionSet) Toggle(exerciseID int, date domain.Date) bool {
	key := domain.CompletionRecord{ExerciseID: exerciseID, Date: date}
	if _, ok := s.records[key]; ok {
		delete(s.records, key)
		return false
	}
	s.records[key] = struct{}{}
	return true
}

func (s *CompletionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns a sorted snapshot, by date then exercise id.
func (s *CompletionSet) Records() []domain.CompletionRecord {
	out := make([]domain.CompletionRecord, 0, s.Len())
	if s == nil {
		return out
	}
	for r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date.String() < b.Date.String()
		}
		return a.ExerciseID < b.ExerciseID
	})
	return out
}
