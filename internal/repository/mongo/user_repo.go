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

const accountCollectionName = "users"

// mongoAccountRepository implements repository.AccountRepository using MongoDB.
type mongoAccountRepository struct {
	collection *mongo.Collection
	counters   *counters
}

func NewMongoAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &mongoAccountRepository{
		collection: db.Collection(accountCollectionName),
		counters:   newCounters(db),
	}
}

// Create inserts a new account and returns its numeric id.
func (r *mongoAccountRepository) Create(ctx context.Context, account *domain.Account) (int, error) {
	if account.Email == "" || account.PasswordHash == "" {
		return 0, errors.New("account email and password hash are required")
	}

	id, err := r.counters.next(ctx, accountCollectionName)
	if err != nil {
		return 0, err
	}
	account.ID = id
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, repository.ErrDuplicate
		}
		return 0, err
	}
	return id, nil
}

func (r *mongoAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoAccountRepository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// Update replaces the editable fields. An empty PasswordHash keeps the stored one.
func (r *mongoAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	set := bson.M{
		"name":      account.Name,
		"email":     account.Email,
		"uf":        account.UF,
		"level":     account.Level,
		"updatedAt": time.Now().UTC(),
	}
	if account.PasswordHash != "" {
		set["passwordHash"] = account.PasswordHash
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": account.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var account domain.Account
	if err := r.collection.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// EnsureAccountIndexes makes emails unique.
func EnsureAccountIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
