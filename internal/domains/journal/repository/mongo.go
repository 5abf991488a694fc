package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"journal-backend/internal/domains/journal"
	"journal-backend/internal/infrastructure/database"
	"journal-backend/pkg/cache"
	"journal-backend/pkg/logger"
)

const (
	listCacheKey = "journals:all"
	listCacheTTL = 5 * time.Minute
)

// mongoRepository implements journal.Repository with a read-through
// cache on the list path.
type mongoRepository struct {
	coll  *mongo.Collection
	cache cache.Cache
}

func NewMongoRepository(db *database.MongoDB, c cache.Cache) journal.Repository {
	return &mongoRepository{
		coll:  db.Collection(journal.Collection),
		cache: c,
	}
}

func (r *mongoRepository) Create(ctx context.Context, j *journal.Journal) error {
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, j)
	if err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}
	j.ID = res.InsertedID.(primitive.ObjectID)

	r.invalidateList(ctx)
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*journal.Journal, error) {
	var j journal.Journal
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find journal: %w", err)
	}
	return &j, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*journal.Journal, error) {
	var cached []*journal.Journal
	if found, err := r.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	defer cursor.Close(ctx)

	var journals []*journal.Journal
	if err := cursor.All(ctx, &journals); err != nil {
		return nil, fmt.Errorf("decode journals: %w", err)
	}

	if err := r.cache.Set(ctx, listCacheKey, journals, listCacheTTL); err != nil {
		logger.Warn("Failed to cache journal list", map[string]interface{}{"error": err.Error()})
	}

	return journals, nil
}

func (r *mongoRepository) SetEditor(ctx context.Context, id primitive.ObjectID, editorID *primitive.ObjectID) error {
	var update bson.M
	if editorID == nil {
		update = bson.M{
			"$unset": bson.M{"editorId": ""},
			"$set":   bson.M{"updatedAt": time.Now()},
		}
	} else {
		update = bson.M{
			"$set": bson.M{"editorId": *editorID, "updatedAt": time.Now()},
		}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("set journal editor: %w", err)
	}
	if res.MatchedCount == 0 {
		return journal.NewJournalNotFound()
	}

	r.invalidateList(ctx)
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	if res.DeletedCount == 0 {
		return journal.NewJournalNotFound()
	}

	r.invalidateList(ctx)
	return nil
}

func (r *mongoRepository) invalidateList(ctx context.Context) {
	if err := r.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Warn("Failed to invalidate journal list cache", map[string]interface{}{"error": err.Error()})
	}
}
