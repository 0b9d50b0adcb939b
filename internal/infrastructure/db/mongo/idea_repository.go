package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ideadrop/content-api/internal/core/domain"
)

const ideasCollection = "ideas"

// IdeaRepository implements ports.IdeaRepository on MongoDB.
type IdeaRepository struct {
	coll *mongo.Collection
}

func NewIdeaRepository(db *mongo.Database) *IdeaRepository {
	return &IdeaRepository{coll: db.Collection(ideasCollection)}
}

type ideaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary"`
	Description string             `bson:"description"`
	Tags        []string           `bson:"tags"`
	UserID      primitive.ObjectID `bson:"user"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *ideaDoc) toDomain() *domain.Idea {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Idea{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Summary:     d.Summary,
		Description: d.Description,
		Tags:        tags,
		UserID:      d.UserID.Hex(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ideaDocFromDomain(idea *domain.Idea) (*ideaDoc, error) {
	owner, err := primitive.ObjectIDFromHex(idea.UserID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return &ideaDoc{
		Title:       idea.Title,
		Summary:     idea.Summary,
		Description: idea.Description,
		Tags:        idea.Tags,
		UserID:      owner,
		CreatedAt:   idea.CreatedAt,
		UpdatedAt:   idea.UpdatedAt,
	}, nil
}

func (r *IdeaRepository) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	doc, err := ideaDocFromDomain(idea)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert idea: %w", err)
	}

	created := *idea
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *IdeaRepository) FindByID(ctx context.Context, id string) (*domain.Idea, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc ideaDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("find idea: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns the newest ideas first.
func (r *IdeaRepository) List(ctx context.Context, limit int) ([]*domain.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer cursor.Close(ctx)

	ideas := make([]*domain.Idea, 0)
	for cursor.Next(ctx) {
		var doc ideaDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode idea: %w", err)
		}
		ideas = append(ideas, doc.toDomain())
	}
	return ideas, cursor.Err()
}

func (r *IdeaRepository) Update(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	oid, err := primitive.ObjectIDFromHex(idea.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	doc, err := ideaDocFromDomain(idea)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrIdeaNotFound
	}
	return idea, nil
}

func (r *IdeaRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIdeaNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing the newest-first listing.
func (r *IdeaRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
