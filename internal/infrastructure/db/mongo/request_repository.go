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
)

// Collection names for the three public request kinds.
const (
	CollectionAppointments = "appointments"
	CollectionApplications = "career_applications"
	CollectionMessages     = "contact_messages"
)

// RequestRepository is the single generic implementation of the uniform
// persistence pattern shared by appointments, career applications and
// contact messages. Each instantiation binds one collection and the
// not-found sentinel of its entity kind.
type RequestRepository[T any] struct {
	col      *mongo.Collection
	notFound error
}

func NewRequestRepository[T any](db *mongo.Database, collection string, notFound error) *RequestRepository[T] {
	return &RequestRepository[T]{col: db.Collection(collection), notFound: notFound}
}

// Create inserts rec and returns the generated id as a hex string.
func (r *RequestRepository[T]) Create(ctx context.Context, rec *T) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected inserted id type %T", r.col.Name(), res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns records newest-created-first, optionally filtered to one
// status value.
func (r *RequestRepository[T]) List(ctx context.Context, status string) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}

	var recs []*T
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.col.Name(), err)
	}
	return recs, nil
}

func (r *RequestRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, r.notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec T
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.notFound
		}
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return &rec, nil
}

// UpdateStatus writes the new status value; a single-row write, atomicity is
// the store's.
func (r *RequestRepository[T]) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return r.notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update %s status: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return r.notFound
	}
	return nil
}

// SetReply persists the admin reply, optionally stamping replied_at and a
// status transition in the same write.
func (r *RequestRepository[T]) SetReply(ctx context.Context, id, reply string, repliedAt *time.Time, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return r.notFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"admin_reply": reply}
	if repliedAt != nil {
		set["replied_at"] = repliedAt.UTC()
	}
	if status != "" {
		set["status"] = status
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("set %s reply: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return r.notFound
	}
	return nil
}

// CountByStatus counts records with the given status ("" = all).
func (r *RequestRepository[T]) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.col.Name(), err)
	}
	return n, nil
}

// ListRecent returns up to limit records newest-first.
func (r *RequestRepository[T]) ListRecent(ctx context.Context, status string, limit int64) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list recent %s: %w", r.col.Name(), err)
	}

	var recs []*T
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("list recent %s: %w", r.col.Name(), err)
	}
	return recs, nil
}

// EnsureIndexes creates the status and created_at indexes used by list,
// filter and count queries.
func (r *RequestRepository[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
