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

const logsCollection = "logs"

type LogRepository struct {
	coll *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{coll: db.Collection(logsCollection)}
}

type logDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Role      string             `bson:"role"`
	Action    string             `bson:"action"`
	Details   string             `bson:"details"`
	Timestamp time.Time          `bson:"timestamp"`
	IPAddress string             `bson:"ip_address"`
	UserAgent string             `bson:"user_agent"`
}

func (d logDoc) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Username:  d.Username,
		Role:      d.Role,
		Action:    domain.Action(d.Action),
		Details:   d.Details,
		Timestamp: d.Timestamp.UTC(),
		IPAddress: d.IPAddress,
		UserAgent: d.UserAgent,
	}
}

func (r *LogRepository) Insert(ctx context.Context, entry *domain.LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := logDoc{
		UserID:    entry.UserID,
		Username:  entry.Username,
		Role:      entry.Role,
		Action:    string(entry.Action),
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

func (r *LogRepository) Recent(ctx context.Context, page, limit int) ([]domain.LogEntry, int64, error) {
	return r.page(ctx, bson.M{}, page, limit)
}

func (r *LogRepository) ByUser(ctx context.Context, userID string, page, limit int) ([]domain.LogEntry, int64, error) {
	return r.page(ctx, bson.M{"user_id": userID}, page, limit)
}

func (r *LogRepository) page(ctx context.Context, filter bson.M, page, limit int) ([]domain.LogEntry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count log entries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find log entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.LogEntry
	for cur.Next(ctx) {
		var doc logDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode log entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, total, cur.Err()
}

func (r *LogRepository) LatestByUser(ctx context.Context, userID string) (*domain.LogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var doc logDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("find latest log entry: %w", err)
	}

	entry := doc.toDomain()
	return &entry, nil
}

// EnsureIndexes backs newest-first retrieval globally and per user.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "username", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
