package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"journal-backend/internal/domains/auth"
	"journal-backend/internal/infrastructure/database"
)

// mongoRepository implements auth.Repository over the auths collection.
type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) auth.Repository {
	return &mongoRepository{coll: db.Collection(auth.Collection)}
}

func (r *mongoRepository) Create(ctx context.Context, record *auth.Auth) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("insert auth record: %w", err)
	}

	record.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*auth.Auth, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*auth.Auth, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) FindByUsername(ctx context.Context, username string) (*auth.Auth, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// findOne returns (nil, nil) on no match so services can decide what a
// miss means for them.
func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*auth.Auth, error) {
	var record auth.Auth
	err := r.coll.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find auth record: %w", err)
	}
	return &record, nil
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *mongoRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, bson.M{"phoneNumber": phone})
}

func (r *mongoRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

func (r *mongoRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("count auth records: %w", err)
	}
	return count > 0, nil
}

func (r *mongoRepository) SetReviewerFlag(ctx context.Context, email string, isReviewer bool) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"isReviewer": isReviewer, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("set reviewer flag: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete auth record: %w", err)
	}
	if res.DeletedCount == 0 {
		return auth.NewAuthNotFound()
	}
	return nil
}
