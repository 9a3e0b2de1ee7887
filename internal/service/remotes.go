package service

import (
	"context"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/remote"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=service_test

// exerciseRemote is the part of the remote API the exercise screen uses.
type exerciseRemote interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, draft domain.ExerciseDraft) error
	UpdateExercise(ctx context.Context, id int, draft domain.ExerciseDraft) error
	DeleteExercise(ctx context.Context, id int) error
}

type authRemote interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req remote.RegisterRequest) error
	UpdateUser(ctx context.Context, token string, profile domain.Profile) error
}

type videoRemote interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
}
