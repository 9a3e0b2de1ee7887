package repository

import (
	"context"

	"fittracker/fitness-app/internal/domain"
)

var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccountRepository stores registered users. Emails are unique.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (int, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

// ExerciseRepository stores the exercises of every user.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (int, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id int) (*domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id int) error
}

// VideoRepository stores the video catalog.
type VideoRepository interface {
	Create(ctx context.Context, video *domain.CatalogVideo) (int, error)
	List(ctx context.Context) ([]domain.CatalogVideo, error)
	GetByID(ctx context.Context, id int) (*domain.CatalogVideo, error)
	Delete(ctx context.Context, id int) error
}
