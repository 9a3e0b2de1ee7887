package mongo

import (
	"context"
	"errors"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
	counters   *counters
}

func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
		counters:   newCounters(db),
	}
}

func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (int, error) {
	if exercise.Name == "" || exercise.OwnerID == 0 {
		return 0, errors.New("exercise name and owner are required")
	}

	id, err := r.counters.next(ctx, exerciseCollectionName)
	if err != nil {
		return 0, err
	}
	exercise.ID = id

	if _, err := r.collection.InsertOne(ctx, exercise); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns every stored exercise ordered by id.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *mongoExerciseRepository) GetByID(ctx context.Context, id int) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

func (r *mongoExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	update := bson.M{"$set": bson.M{
		"ownerId":     exercise.OwnerID,
		"name":        exercise.Name,
		"days":        exercise.Days,
		"description": exercise.Description,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": exercise.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoExerciseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureExerciseIndexes indexes exercises by owner.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}},
	})
	return err
}
