package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
)

const bookmarksCollection = "bookmarks"
const bookmarkSequence = "bookmark_id"

type BookmarkRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewBookmarkRepository(db *mongo.Database) *BookmarkRepository {
	return &BookmarkRepository{db: db, coll: db.Collection(bookmarksCollection)}
}

type bookmarkDoc struct {
	ID          int64  `bson:"_id"`
	UserID      int64  `bson:"user_id"`
	Title       string `bson:"title"`
	Description string `bson:"description,omitempty"`
	Link        string `bson:"link"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func (r *BookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, bookmarkSequence)
	if err != nil {
		return nil, err
	}

	doc := bookmarkDoc{
		ID:          id,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
		CreatedAt:   b.CreatedAt.Unix(),
		UpdatedAt:   b.UpdatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}

	created := *b
	created.ID = id
	return &created, nil
}

func (r *BookmarkRepository) ListByOwner(ctx context.Context, userID int64) ([]*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer cur.Close(ctx)

	bookmarks := make([]*domain.Bookmark, 0)
	for cur.Next(ctx) {
		var doc bookmarkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode bookmark: %w", err)
		}
		bookmarks = append(bookmarks, toDomain(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *BookmarkRepository) FindByID(ctx context.Context, id int64) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc bookmarkDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}

	return toDomain(&doc), nil
}

func (r *BookmarkRepository) Update(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       b.Title,
		"description": b.Description,
		"link":        b.Link,
		"updated_at":  b.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": b.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBookmarkNotFound
	}

	return r.FindByID(ctx, b.ID)
}

func (r *BookmarkRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookmarkNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by ListByOwner.
func (r *BookmarkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func toDomain(doc *bookmarkDoc) *domain.Bookmark {
	return &domain.Bookmark{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Title:       doc.Title,
		Description: doc.Description,
		Link:        doc.Link,
		CreatedAt:   unixToTime(doc.CreatedAt),
		UpdatedAt:   unixToTime(doc.UpdatedAt),
	}
}
