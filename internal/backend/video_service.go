package backend

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"
	"fittracker/fitness-app/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

var (
	ErrStorageDisabled = errors.New("object storage is not configured")
	ErrInvalidVideo    = errors.New("nome and a video url or key are required")
	ErrInvalidUpload   = errors.New("unsupported content type")
)

const uploadURLExpiry = 15 * time.Minute

// uploadExtensions maps the accepted media types to object key extensions.
var uploadExtensions = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/webm":      ".webm",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// UploadTicket is a presigned PUT for one media file.
type UploadTicket struct {
	ObjectKey string    `json:"objectKey"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type VideoService interface {
	List(ctx context.Context) ([]domain.Video, error)
	Add(ctx context.Context, video domain.CatalogVideo) (*domain.Video, error)
	Delete(ctx context.Context, id int) error
	UploadURL(ctx context.Context, contentType string) (*UploadTicket, error)
}

// videoService serves the catalog. Entries may hold plain URLs or object
// keys; keys are presigned on every read. storage may be nil.
type videoService struct {
	videos  repository.VideoRepository
	storage storage.FileStorage
	expiry  time.Duration
}

func NewVideoService(videos repository.VideoRepository, fileStorage storage.FileStorage) VideoService {
	return &videoService{videos: videos, storage: fileStorage, expiry: storage.DefaultPresignedURLExpiry}
}

func (s *videoService) List(ctx context.Context) ([]domain.Video, error) {
	stored, err := s.videos.List(ctx)
	if err != nil {
		return nil, err
	}
	videos := make([]domain.Video, 0, len(stored))
	for _, v := range stored {
		video, err := s.resolve(ctx, v)
		if err != nil {
			log.Warnf("backend: skipping video %d: %s", v.ID, err)
			continue
		}
		videos = append(videos, video)
	}
	return videos, nil
}

func (s *videoService) Add(ctx context.Context, video domain.CatalogVideo) (*domain.Video, error) {
	video.Name = strings.TrimSpace(video.Name)
	if video.Name == "" || (video.VideoURL == "" && video.VideoKey == "") {
		return nil, ErrInvalidVideo
	}
	if (video.VideoKey != "" || video.ImageKey != "") && s.storage == nil {
		return nil, ErrStorageDisabled
	}
	if _, err := s.videos.Create(ctx, &video); err != nil {
		return nil, err
	}
	resolved, err := s.resolve(ctx, video)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// Delete removes the catalog entry and then its stored media.
func (s *videoService) Delete(ctx context.Context, id int) error {
	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.videos.Delete(ctx, id); err != nil {
		return err
	}
	if s.storage == nil {
		return nil
	}

	var errs error
	for _, key := range []string{video.VideoKey, video.ImageKey} {
		if key == "" {
			continue
		}
		errs = multierr.Append(errs, s.storage.DeleteObject(ctx, key))
	}
	return errs
}

// UploadURL reserves a fresh object key and presigns a PUT for it.
func (s *videoService) UploadURL(ctx context.Context, contentType string) (*UploadTicket, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	ext, ok := uploadExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUpload, contentType)
	}

	folder := "videos"
	if strings.HasPrefix(contentType, "image/") {
		folder = "images"
	}
	key := path.Join(folder, uuid.NewString()+ext)

	url, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, err
	}
	return &UploadTicket{ObjectKey: key, UploadURL: url, ExpiresAt: time.Now().Add(uploadURLExpiry).UTC()}, nil
}

func (s *videoService) resolve(ctx context.Context, v domain.CatalogVideo) (domain.Video, error) {
	video := domain.Video{ID: v.ID, Name: v.Name, ImageURL: v.ImageURL, VideoURL: v.VideoURL}
	if s.storage == nil {
		return video, nil
	}
	if v.VideoKey != "" {
		url, err := s.storage.GeneratePresignedDownloadURL(ctx, v.VideoKey, s.expiry)
		if err != nil {
			return domain.Video{}, err
		}
		video.VideoURL = url
	}
	if v.ImageKey != "" {
		url, err := s.storage.GeneratePresignedDownloadURL(ctx, v.ImageKey, s.expiry)
		if err != nil {
			return domain.Video{}, err
		}
		video.ImageURL = url
	}
	return video, nil
}
