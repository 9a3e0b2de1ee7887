package backend

import (
	"context"
	"errors"
	"strings"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidExercise = errors.New("nome and idUser are required")

type ExerciseService interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	Create(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	Update(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error)
	Delete(ctx context.Context, id int) error
}

// exerciseService stores exercises for every user. Ownership is carried
// by the exercise itself; clients filter the shared list.
type exerciseService struct {
	exercises repository.ExerciseRepository
	accounts  repository.AccountRepository
}

func NewExerciseService(exercises repository.ExerciseRepository, accounts repository.AccountRepository) ExerciseService {
	return &exerciseService{exercises: exercises, accounts: accounts}
}

func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return s.exercises.List(ctx)
}

func (s *exerciseService) Create(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if err := s.check(ctx, &exercise); err != nil {
		return nil, err
	}
	if _, err := s.exercises.Create(ctx, &exercise); err != nil {
		return nil, err
	}
	log.Debugf("backend: exercise %d created for %d", exercise.ID, exercise.OwnerID)
	return &exercise, nil
}

func (s *exerciseService) Update(ctx context.Context, exercise domain.Exercise) (*domain.Exercise, error) {
	if err := s.check(ctx, &exercise); err != nil {
		return nil, err
	}
	if err := s.exercises.Update(ctx, &exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (s *exerciseService) Delete(ctx context.Context, id int) error {
	return s.exercises.Delete(ctx, id)
}

// check requires a name and an existing owner.
func (s *exerciseService) check(ctx context.Context, exercise *domain.Exercise) error {
	exercise.Name = strings.TrimSpace(exercise.Name)
	if exercise.Name == "" || exercise.OwnerID <= 0 {
		return ErrInvalidExercise
	}
	if _, err := s.accounts.GetByID(ctx, exercise.OwnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidExercise
		}
		return err
	}
	return nil
}
