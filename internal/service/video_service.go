package service

import (
	"context"

	"fittracker/fitness-app/internal/domain"
)

type VideoService interface {
	List(ctx context.Context) ([]domain.Video, error)
}

type videoService struct {
	remote videoRemote
}

func NewVideoService(remote videoRemote) VideoService {
	return &videoService{remote: remote}
}

// List returns the catalog in remote order.
func (s *videoService) List(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.remote.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}
