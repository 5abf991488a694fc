package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"journal-backend/internal/domains/reviewer"
	"journal-backend/internal/infrastructure/database"
)

// mongoRepository implements reviewer.Repository over the reviewers
// collection. Email uniqueness is backed by a unique index.
type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) reviewer.Repository {
	return &mongoRepository{coll: db.Collection(reviewer.Collection)}
}

func (r *mongoRepository) Create(ctx context.Context, rec *reviewer.Reviewer) error {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return reviewer.NewReviewerEmailExists(rec.Email)
	}
	if err != nil {
		return fmt.Errorf("insert reviewer: %w", err)
	}

	rec.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) CreateMany(ctx context.Context, records []*reviewer.Reviewer) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		rec.CreatedAt = now
		rec.UpdatedAt = now
		docs[i] = rec
	}

	// Ordered insert: the first failure aborts, nothing after it lands.
	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if mongo.IsDuplicateKeyError(err) {
		return reviewer.NewReviewerEmailExists("one of the batch records")
	}
	if err != nil {
		return fmt.Errorf("bulk insert reviewers: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*reviewer.Reviewer, error) {
	var rec reviewer.Reviewer
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find reviewer: %w", err)
	}
	return &rec, nil
}

func (r *mongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, fmt.Errorf("count reviewers: %w", err)
	}
	return count > 0, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*reviewer.Reviewer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	defer cursor.Close(ctx)

	var reviewers []*reviewer.Reviewer
	if err := cursor.All(ctx, &reviewers); err != nil {
		return nil, fmt.Errorf("decode reviewers: %w", err)
	}
	return reviewers, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reviewer: %w", err)
	}
	if res.DeletedCount == 0 {
		return reviewer.NewReviewerNotFound()
	}
	return nil
}
