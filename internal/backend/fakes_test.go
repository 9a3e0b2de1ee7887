package backend_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"
)

type memAccounts struct {
	mu     sync.Mutex
	byID   map[int]domain.Account
	nextID int
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byID: map[int]domain.Account{}, nextID: 1}
}

func (m *memAccounts) Create(_ context.Context, a *domain.Account) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == a.Email {
			return 0, repository.ErrDuplicate
		}
	}
	a.ID = m.nextID
	m.nextID++
	m.byID[a.ID] = *a
	return a.ID, nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAccounts) GetByID(_ context.Context, id int) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (m *memAccounts) Update(_ context.Context, a *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[a.ID]; !ok {
		return repository.ErrNotFound
	}
	m.byID[a.ID] = *a
	return nil
}

type memExercises struct {
	mu     sync.Mutex
	byID   map[int]domain.Exercise
	nextID int
}

func newMemExercises() *memExercises {
	return &memExercises{byID: map[int]domain.Exercise{}, nextID: 1}
}

func (m *memExercises) Create(_ context.Context, e *domain.Exercise) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.nextID
	m.nextID++
	m.byID[e.ID] = *e
	return e.ID, nil
}

func (m *memExercises) List(_ context.Context) ([]domain.Exercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Exercise, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memExercises) GetByID(_ context.Context, id int) (*domain.Exercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (m *memExercises) Update(_ context.Context, e *domain.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[e.ID]; !ok {
		return repository.ErrNotFound
	}
	m.byID[e.ID] = *e
	return nil
}

func (m *memExercises) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memVideos struct {
	mu     sync.Mutex
	byID   map[int]domain.CatalogVideo
	nextID int
}

func newMemVideos() *memVideos {
	return &memVideos{byID: map[int]domain.CatalogVideo{}, nextID: 1}
}

func (m *memVideos) Create(_ context.Context, v *domain.CatalogVideo) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.ID = m.nextID
	m.nextID++
	m.byID[v.ID] = *v
	return v.ID, nil
}

func (m *memVideos) List(_ context.Context) ([]domain.CatalogVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.CatalogVideo, 0, len(m.byID))
	for _, v := range m.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memVideos) GetByID(_ context.Context, id int) (*domain.CatalogVideo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (m *memVideos) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// fakeStorage signs nothing; it returns recognisable URLs.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) GeneratePresignedUploadURL(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://bucket.test/%s?put&type=%s", key, contentType), nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://bucket.test/" + key + "?get", nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}
