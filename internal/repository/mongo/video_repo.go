package mongo

import (
	"context"
	"errors"
	"time"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const videoCollectionName = "videos"

type mongoVideoRepository struct {
	collection *mongo.Collection
	counters   *counters
}

func NewMongoVideoRepository(db *mongo.Database) repository.VideoRepository {
	return &mongoVideoRepository{
		collection: db.Collection(videoCollectionName),
		counters:   newCounters(db),
	}
}

func (r *mongoVideoRepository) Create(ctx context.Context, video *domain.CatalogVideo) (int, error) {
	if video.Name == "" {
		return 0, errors.New("video name is required")
	}

	id, err := r.counters.next(ctx, videoCollectionName)
	if err != nil {
		return 0, err
	}
	video.ID = id
	video.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, video); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the catalog in insertion order.
func (r *mongoVideoRepository) List(ctx context.Context) ([]domain.CatalogVideo, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	videos := []domain.CatalogVideo{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *mongoVideoRepository) GetByID(ctx context.Context, id int) (*domain.CatalogVideo, error) {
	var video domain.CatalogVideo
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *mongoVideoRepository) Delete(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
