package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"journal-backend/internal/domains/article"
	"journal-backend/internal/infrastructure/database"
)

// mongoRepository implements article.Repository over the articles
// collection.
type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) article.Repository {
	return &mongoRepository{coll: db.Collection(article.Collection)}
}

func (r *mongoRepository) Create(ctx context.Context, a *article.Article) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Reviewers == nil {
		a.Reviewers = []article.ReviewEntry{}
	}

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*article.Article, error) {
	var a article.Article
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]*article.Article, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *mongoRepository) ListByAuthorEmail(ctx context.Context, email string) ([]*article.Article, error) {
	return r.list(ctx, bson.M{"authors.email": email})
}

func (r *mongoRepository) ListByJournal(ctx context.Context, journalID string) ([]*article.Article, error) {
	return r.list(ctx, bson.M{"journalId": journalID})
}

func (r *mongoRepository) ListByReviewerEmail(ctx context.Context, email string) ([]*article.Article, error) {
	return r.list(ctx, bson.M{"reviewers.email": email})
}

func (r *mongoRepository) list(ctx context.Context, filter bson.M) ([]*article.Article, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []*article.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (r *mongoRepository) Replace(ctx context.Context, id primitive.ObjectID, a *article.Article) error {
	update := bson.M{"$set": bson.M{
		"title":     a.Title,
		"abstract":  a.Abstract,
		"keywords":  a.Keywords,
		"authors":   a.Authors,
		"journalId": a.JournalID,
		"reviewers": a.Reviewers,
		"updatedAt": time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("replace article: %w", err)
	}
	if res.MatchedCount == 0 {
		return article.NewArticleNotFound()
	}
	return nil
}

func (r *mongoRepository) SetReviewers(ctx context.Context, id primitive.ObjectID, reviewers []article.ReviewEntry) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"reviewers": reviewers, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("set article reviewers: %w", err)
	}
	if res.MatchedCount == 0 {
		return article.NewArticleNotFound()
	}
	return nil
}
