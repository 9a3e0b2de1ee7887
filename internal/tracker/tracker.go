package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"fittracker/fitness-app/internal/domain"

	log "github.com/sirupsen/logrus"
)

// ErrNotReady is returned by views when the exercise list has not been
// loaded successfully.
var ErrNotReady = errors.New("exercise list is not loaded")

// State is the lifecycle of one exercise screen.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Loader fetches the authoritative exercise list.
type Loader interface {
	LoadExercises(ctx context.Context) ([]domain.Exercise, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) ([]domain.Exercise, error)

func (f LoaderFunc) LoadExercises(ctx context.Context) ([]domain.Exercise, error) {
	return f(ctx)
}

// Tracker owns the exercise list, the completion records and the derived
// views for today. The list is only ever replaced by a full reload.
type Tracker struct {
	loader Loader
	now    func() time.Time

	mu          sync.RWMutex
	state       State
	generation  uint64 // bumped by Activate and Reset; a load from an older one is dropped
	loadSeq     uint64
	appliedSeq  uint64
	lastErr     error
	today       domain.Date
	exercises   []domain.Exercise
	completions *CompletionSet
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now; used to pin "today" in tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func New(loader Loader, opts ...Option) *Tracker {
	t := &Tracker{
		loader:      loader,
		now:         time.Now,
		completions: NewCompletionSet(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Activate captures today's date and performs the initial load.
// A failed load leaves the tracker in StateError until Reload is called.
// If Reset or another Activate runs while the load is in flight, its
// result is discarded.
func (t *Tracker) Activate(ctx context.Context) error {
	t.mu.Lock()
	t.generation++
	t.today = domain.DateOf(t.now())
	t.state = StateLoading
	t.lastErr = nil
	gen, seq := t.beginLoad()
	t.mu.Unlock()

	exercises, err := t.loader.LoadExercises(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.current(gen, seq) {
		log.Debugf("tracker: discarding stale initial load")
		return nil
	}
	if err != nil {
		t.state = StateError
		t.lastErr = err
		log.Errorf("tracker: initial load failed: %s", err)
		return err
	}
	t.apply(seq, exercises)
	log.Debugf("tracker: loaded %d exercises for %s (%s)", len(exercises), t.today, t.today.Weekday())
	return nil
}

// EnsureActive activates an idle tracker and is a no-op otherwise.
func (t *Tracker) EnsureActive(ctx context.Context) error {
	t.mu.RLock()
	idle := t.state == StateIdle
	t.mu.RUnlock()
	if !idle {
		return nil
	}
	return t.Activate(ctx)
}

// Reload replaces the exercise list with a fresh copy from the loader.
// From StateError or StateIdle it behaves like Activate. While a load is
// in flight it loads again without re-reading the clock. When a ready
// tracker fails to reload it keeps the previous list.
func (t *Tracker) Reload(ctx context.Context) error {
	t.mu.Lock()
	if t.state == StateIdle || t.state == StateError {
		t.mu.Unlock()
		return t.Activate(ctx)
	}
	gen, seq := t.beginLoad()
	t.mu.Unlock()

	exercises, err := t.loader.LoadExercises(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.current(gen, seq) {
		log.Debugf("tracker: discarding stale reload")
		return nil
	}
	if err != nil {
		log.Warnf("tracker: reload failed, keeping previous list: %s", err)
		return err
	}
	t.apply(seq, exercises)
	return nil
}

// beginLoad must be called with mu held.
func (t *Tracker) beginLoad() (gen, seq uint64) {
	t.loadSeq++
	return t.generation, t.loadSeq
}

// current reports whether a load started at (gen, seq) may still be
// applied: no Reset or Activate since, and no newer load applied.
// Must be called with mu held.
func (t *Tracker) current(gen, seq uint64) bool {
	return gen == t.generation && seq > t.appliedSeq
}

// apply must be called with mu held.
func (t *Tracker) apply(seq uint64, exercises []domain.Exercise) {
	t.appliedSeq = seq
	t.exercises = exercises
	t.state = StateReady
}

// Reset drops all state, as when the screen is torn down.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.state = StateIdle
	t.lastErr = nil
	t.today = domain.Date{}
	t.exercises = nil
	t.completions = NewCompletionSet()
}

func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Err returns the failure that moved the tracker to StateError.
func (t *Tracker) Err() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

// Today is the date captured at activation.
func (t *Tracker) Today() domain.Date {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.today
}

// TodayWeekday resolves today's weekday tag. It does not re-read the clock.
func (t *Tracker) TodayWeekday() domain.Weekday {
	return t.Today().Weekday()
}

// Exercises returns a copy of the loaded list.
func (t *Tracker) Exercises() ([]domain.Exercise, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != StateReady {
		return nil, ErrNotReady
	}
	out := make([]domain.Exercise, len(t.exercises))
	copy(out, t.exercises)
	return out, nil
}

// ScheduledToday returns the exercises scheduled on today's weekday.
func (t *Tracker) ScheduledToday() ([]domain.Exercise, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != StateReady {
		return nil, ErrNotReady
	}
	return ScheduledOn(t.exercises, t.today.Weekday()), nil
}

// Toggle flips the completion of exerciseID on date and returns whether it
// is now completed. The exercise does not need to be scheduled on date.
func (t *Tracker) Toggle(exerciseID int, date domain.Date) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completions.Toggle(exerciseID, date)
}

func (t *Tracker) IsCompleted(exerciseID int, date domain.Date) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completions.Has(exerciseID, date)
}

// ProgressFor reports the progress of date over the currently loaded list.
func (t *Tracker) ProgressFor(date domain.Date) (Progress, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.state != StateReady {
		return Progress{}, ErrNotReady
	}
	return ProgressOf(t.exercises, t.completions, date), nil
}

// Completions returns a snapshot of all records, including those whose
// exercise has since been deleted.
func (t *Tracker) Completions() []domain.CompletionRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.completions.Records()
}
