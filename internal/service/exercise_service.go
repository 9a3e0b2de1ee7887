package service

import (
	"context"
	"errors"
	"strings"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/metrics"
	"fittracker/fitness-app/internal/session"
	"fittracker/fitness-app/internal/tracker"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrNoIdentity = errors.New("session has no user identity")
)

// ExerciseInput holds the user-editable fields of an exercise form.
type ExerciseInput struct {
	Name        string        `validate:"required"`
	Days        domain.DaySet `validate:"days"`
	Description string
}

// TodayView is what the exercise screen shows for the current date.
type TodayView struct {
	Date      domain.Date      `json:"date"`
	Weekday   domain.Weekday   `json:"weekday"`
	Exercises []TodayExercise  `json:"exercises"`
	Progress  tracker.Progress `json:"progress"`
	Percent   int              `json:"percent"`
}

type TodayExercise struct {
	domain.Exercise
	Completed bool `json:"completed"`
}

// --- Service Interface ---
type ExerciseService interface {
	Activate(ctx context.Context) error
	Reload(ctx context.Context) error
	Deactivate()
	State() tracker.State

	List(ctx context.Context) ([]domain.Exercise, error)
	Create(ctx context.Context, in ExerciseInput) error
	Update(ctx context.Context, id int, in ExerciseInput) error
	Delete(ctx context.Context, id int) error

	Today(ctx context.Context) (*TodayView, error)
	Toggle(ctx context.Context, exerciseID int, date domain.Date) (domain.CompletionRecord, bool, error)
	Progress(ctx context.Context, date domain.Date) (tracker.Progress, error)
}

// --- Service Implementation ---

// exerciseService drives one exercise screen: it validates forms, sends
// mutations to the remote API and reloads the whole list afterwards.
type exerciseService struct {
	remote  exerciseRemote
	session *session.Session
	tracker *tracker.Tracker
	metrics *metrics.Manager
}

// NewExerciseService wires a tracker whose loader is the remote exercise
// list filtered to the signed-in user.
func NewExerciseService(remote exerciseRemote, sess *session.Session, m *metrics.Manager, opts ...tracker.Option) ExerciseService {
	s := &exerciseService{
		remote:  remote,
		session: sess,
		metrics: m,
	}
	s.tracker = tracker.New(tracker.LoaderFunc(s.loadOwned), opts...)
	return s
}

// loadOwned fetches all exercises and keeps the ones owned by the session
// user. Without an identity the list is empty.
func (s *exerciseService) loadOwned(ctx context.Context) ([]domain.Exercise, error) {
	all, err := s.remote.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	identity, ok := s.session.Identity()
	if !ok {
		log.Warn("exercises: no identity in session, showing an empty list")
		return []domain.Exercise{}, nil
	}

	owned := make([]domain.Exercise, 0, len(all))
	for _, ex := range all {
		if ex.OwnerID == int(identity.UserID) {
			owned = append(owned, ex)
		}
	}
	return owned, nil
}

func (s *exerciseService) Activate(ctx context.Context) error {
	return s.tracker.Activate(ctx)
}

func (s *exerciseService) Reload(ctx context.Context) error {
	return s.tracker.Reload(ctx)
}

// Deactivate tears the screen down; completion records are dropped.
func (s *exerciseService) Deactivate() {
	s.tracker.Reset()
}

func (s *exerciseService) State() tracker.State {
	return s.tracker.State()
}

func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	if err := s.ensureActive(ctx); err != nil {
		return nil, err
	}
	return s.tracker.Exercises()
}

// Create validates locally, asks the remote API to store the exercise and
// then reloads the list.
func (s *exerciseService) Create(ctx context.Context, in ExerciseInput) error {
	draft, err := s.draft(in)
	if err != nil {
		return err
	}
	if err := s.remote.CreateExercise(ctx, draft); err != nil {
		return err
	}
	log.Infof("exercises: created %q for user %d", draft.Name, draft.OwnerID)
	return s.tracker.Reload(ctx)
}

func (s *exerciseService) Update(ctx context.Context, id int, in ExerciseInput) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	draft, err := s.draft(in)
	if err != nil {
		return err
	}
	if err := s.remote.UpdateExercise(ctx, id, draft); err != nil {
		return err
	}
	log.Infof("exercises: updated %d", id)
	return s.tracker.Reload(ctx)
}

// Delete removes the exercise remotely. Its completion records stay in
// memory but no longer count toward progress after the reload.
func (s *exerciseService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.remote.DeleteExercise(ctx, id); err != nil {
		return err
	}
	log.Infof("exercises: deleted %d", id)
	return s.tracker.Reload(ctx)
}

func (s *exerciseService) Today(ctx context.Context) (*TodayView, error) {
	if err := s.ensureActive(ctx); err != nil {
		return nil, err
	}
	scheduled, err := s.tracker.ScheduledToday()
	if err != nil {
		return nil, err
	}
	date := s.tracker.Today()
	progress, err := s.tracker.ProgressFor(date)
	if err != nil {
		return nil, err
	}

	view := &TodayView{
		Date:      date,
		Weekday:   date.Weekday(),
		Exercises: make([]TodayExercise, len(scheduled)),
		Progress:  progress,
		Percent:   progress.Percent(),
	}
	for i, ex := range scheduled {
		view.Exercises[i] = TodayExercise{Exercise: ex, Completed: s.tracker.IsCompleted(ex.ID, date)}
	}
	return view, nil
}

// Toggle flips a completion record and reports whether it is now set.
// A zero date means today.
func (s *exerciseService) Toggle(ctx context.Context, exerciseID int, date domain.Date) (domain.CompletionRecord, bool, error) {
	if exerciseID <= 0 {
		return domain.CompletionRecord{}, false, &ValidationError{Field: "exerciseId", Message: "is required"}
	}
	if err := s.ensureActive(ctx); err != nil {
		return domain.CompletionRecord{}, false, err
	}
	if date.IsZero() {
		date = s.tracker.Today()
	}
	done := s.tracker.Toggle(exerciseID, date)
	if s.metrics != nil {
		s.metrics.CounterToggles.Inc()
	}
	return domain.CompletionRecord{ExerciseID: exerciseID, Date: date}, done, nil
}

// Progress reports the progress of date; a zero date means today.
func (s *exerciseService) Progress(ctx context.Context, date domain.Date) (tracker.Progress, error) {
	if err := s.ensureActive(ctx); err != nil {
		return tracker.Progress{}, err
	}
	if date.IsZero() {
		date = s.tracker.Today()
	}
	return s.tracker.ProgressFor(date)
}

func (s *exerciseService) ensureActive(ctx context.Context) error {
	if !s.session.Authenticated() {
		return session.ErrNoSession
	}
	return s.tracker.EnsureActive(ctx)
}

func (s *exerciseService) draft(in ExerciseInput) (domain.ExerciseDraft, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := check(in); err != nil {
		return domain.ExerciseDraft{}, err
	}
	identity, ok := s.session.Identity()
	if !ok {
		return domain.ExerciseDraft{}, ErrNoIdentity
	}
	return domain.ExerciseDraft{
		OwnerID:     int(identity.UserID),
		Name:        in.Name,
		Days:        in.Days,
		Description: strings.TrimSpace(in.Description),
	}, nil
}
