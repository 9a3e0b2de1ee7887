package mongo_test

import (
	"context"
	"testing"

	"fittracker/fitness-app/internal/domain"
	"fittracker/fitness-app/internal/repository"
	repomongo "fittracker/fitness-app/internal/repository/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func counterResponse(name string, seq int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
		{Key: "_id", Value: name},
		{Key: "seq", Value: seq},
	}})
}

func TestAccountRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns sequential id", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(counterResponse("users", 5), mtest.CreateSuccessResponse())

		account := &domain.Account{Name: "Ana", Email: "ana@example.com", UF: "RJ", Level: "1", PasswordHash: "hash"}
		id, err := repo.Create(context.Background(), account)
		require.NoError(mt, err)
		assert.Equal(mt, 5, id)
		assert.Equal(mt, 5, account.ID)
		assert.False(mt, account.CreatedAt.IsZero())
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(counterResponse("users", 6), mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(context.Background(), &domain.Account{Email: "ana@example.com", PasswordHash: "hash"})
		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})

	mt.Run("create requires credentials", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		_, err := repo.Create(context.Background(), &domain.Account{Name: "Ana"})
		assert.Error(mt, err)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittracker.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: 5},
			{Key: "name", Value: "Ana"},
			{Key: "email", Value: "ana@example.com"},
			{Key: "uf", Value: "RJ"},
			{Key: "level", Value: "2"},
			{Key: "passwordHash", Value: "hash"},
		}))

		account, err := repo.GetByEmail(context.Background(), "ana@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, 5, account.ID)
		assert.Equal(mt, "2", account.Level)
		assert.Equal(mt, "hash", account.PasswordHash)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittracker.users", mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("update missing account", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.Update(context.Background(), &domain.Account{ID: 99, Name: "Ana"})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := repomongo.NewMongoAccountRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := repo.Update(context.Background(), &domain.Account{ID: 5, Name: "Ana Maria"})
		assert.NoError(mt, err)
	})
}

func TestExerciseRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(counterResponse("exercises", 1), mtest.CreateSuccessResponse())

		id, err := repo.Create(context.Background(), &domain.Exercise{
			OwnerID: 7, Name: "Squats", Days: domain.NewDaySet(domain.Monday),
		})
		require.NoError(mt, err)
		assert.Equal(mt, 1, id)
	})

	mt.Run("create requires owner", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		_, err := repo.Create(context.Background(), &domain.Exercise{Name: "Squats"})
		assert.Error(mt, err)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		days := domain.NewDaySet(domain.Monday, domain.Wednesday)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittracker.exercises", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "ownerId", Value: 7}, {Key: "name", Value: "Squats"}, {Key: "days", Value: int32(days)}, {Key: "description", Value: "legs"}},
			bson.D{{Key: "_id", Value: 2}, {Key: "ownerId", Value: 8}, {Key: "name", Value: "Plank"}, {Key: "days", Value: int32(0)}, {Key: "description", Value: ""}},
		))

		exercises, err := repo.List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, exercises, 2)
		assert.Equal(mt, domain.Exercise{ID: 1, OwnerID: 7, Name: "Squats", Days: days, Description: "legs"}, exercises[0])
		assert.Equal(mt, 8, exercises[1].OwnerID)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fittracker.exercises", mtest.FirstBatch))

		exercises, err := repo.List(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, exercises)
		assert.Empty(mt, exercises)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.Delete(context.Background(), 42), repository.ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := repomongo.NewMongoExerciseRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := repo.Update(context.Background(), &domain.Exercise{ID: 1, OwnerID: 7, Name: "Squats", Days: domain.NewDaySet(domain.Friday)})
		assert.NoError(mt, err)
	})
}

func TestVideoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create and get", func(mt *mtest.T) {
		repo := repomongo.NewMongoVideoRepository(mt.DB)
		mt.AddMockResponses(
			counterResponse("videos", 3),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "fittracker.videos", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: 3},
				{Key: "name", Value: "Squat form"},
				{Key: "videoKey", Value: "videos/abc.mp4"},
			}),
		)

		id, err := repo.Create(context.Background(), &domain.CatalogVideo{Name: "Squat form", VideoKey: "videos/abc.mp4"})
		require.NoError(mt, err)
		assert.Equal(mt, 3, id)

		video, err := repo.GetByID(context.Background(), 3)
		require.NoError(mt, err)
		assert.Equal(mt, "videos/abc.mp4", video.VideoKey)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := repomongo.NewMongoVideoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		assert.NoError(mt, repo.Delete(context.Background(), 3))
	})
}
