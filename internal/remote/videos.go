package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"fittracker/fitness-app/internal/domain"

	log "github.com/sirupsen/logrus"
)

var videosCacheKey = []byte("videos::all")

type videoDTO struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
}

func (d videoDTO) toDomain() domain.Video {
	name := d.Nome
	if name == "" {
		name = d.Name
	}
	return domain.Video{ID: d.ID, Name: name, ImageURL: d.ImageURL, VideoURL: d.VideoURL}
}

// ListVideos returns the video catalog, served from cache while fresh.
func (c *Client) ListVideos(ctx context.Context) ([]domain.Video, error) {
	var dtos []videoDTO

	if c.cache != nil {
		if cached, err := c.cache.Get(videosCacheKey); err == nil {
			if err := json.Unmarshal(cached, &dtos); err == nil {
				log.Tracef("remote: video catalog served from cache")
				return videosToDomain(dtos), nil
			} else {
				log.Errorf("remote: unmarshal cached video catalog: %s", err)
			}
		}
	}

	raw, err := c.call(ctx, "list videos", http.MethodGet, []string{"videos"}, "", nil, &dtos)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(videosCacheKey, raw, int(c.cacheTTL.Seconds())); err != nil {
			log.Errorf("remote: cache video catalog: %s", err)
		}
	}
	return videosToDomain(dtos), nil
}

// InvalidateVideos drops the cached catalog.
func (c *Client) InvalidateVideos() {
	if c.cache != nil {
		c.cache.Del(videosCacheKey)
	}
}

func videosToDomain(dtos []videoDTO) []domain.Video {
	videos := make([]domain.Video, len(dtos))
	for i, dto := range dtos {
		videos[i] = dto.toDomain()
	}
	return videos
}
