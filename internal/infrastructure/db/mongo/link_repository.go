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

	"github.com/quickaccess/linkdir/internal/core/domain"
)

const linksCollection = "links"

type LinkRepository struct {
	coll *mongo.Collection
}

func NewLinkRepository(db *mongo.Database) *LinkRepository {
	return &LinkRepository{coll: db.Collection(linksCollection)}
}

type linkDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	URL           string             `bson:"url"`
	Description   string             `bson:"description"`
	Logo          string             `bson:"logo"`
	Category      string             `bson:"category"`
	CreatedBy     string             `bson:"created_by"`
	CreatedByName string             `bson:"created_by_name"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d linkDoc) toDomain() domain.Link {
	return domain.Link{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		URL:           d.URL,
		Description:   d.Description,
		Logo:          d.Logo,
		Category:      d.Category,
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := linkDoc{
		Title:         link.Title,
		URL:           link.URL,
		Description:   link.Description,
		Logo:          link.Logo,
		Category:      link.Category,
		CreatedBy:     link.CreatedBy,
		CreatedByName: link.CreatedByName,
		CreatedAt:     link.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert link: %w", err)
	}

	created := *link
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*domain.Link, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc linkDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find link: %w", err)
	}

	link := doc.toDomain()
	return &link, nil
}

func (r *LinkRepository) ListByCategories(ctx context.Context, categories []string) ([]domain.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"category": bson.M{"$in": categories}}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer cur.Close(ctx)

	var links []domain.Link
	for cur.Next(ctx) {
		var doc linkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode link: %w", err)
		}
		links = append(links, doc.toDomain())
	}
	return links, cur.Err()
}

func (r *LinkRepository) Update(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	oid, err := primitive.ObjectIDFromHex(link.ID)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       link.Title,
		"url":         link.URL,
		"description": link.Description,
		"logo":        link.Logo,
		"category":    link.Category,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update link: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrLinkNotFound
	}
	return link, nil
}

func (r *LinkRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}

// EnsureIndexes backs the category-scoped newest-first listing.
func (r *LinkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
