package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quickaccess/linkdir/internal/core/domain"
)

const rolesCollection = "roles"

type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type roleDoc struct {
	Name       string `bson:"name"`
	Slug       string `bson:"slug"`
	Accent     string `bson:"accent"`
	Assignable bool   `bson:"assignable"`
}

// List returns every role sorted assignable-first, then by name ascending.
func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "assignable", Value: -1}, {Key: "name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer cur.Close(ctx)

	var roles []domain.Role
	for cur.Next(ctx) {
		var doc roleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, domain.Role(doc))
	}
	return roles, cur.Err()
}

func (r *RoleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roleDoc
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	role := domain.Role(doc)
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, roleDoc(*role))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// EnsureIndexes enforces slug uniqueness.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
