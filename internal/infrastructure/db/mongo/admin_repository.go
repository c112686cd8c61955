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

	"github.com/havenbridge/homecare-api/internal/core/domain"
)

const collectionAdmins = "admins"

// AdminRepository implements ports.AdminRepository on MongoDB.
type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection(collectionAdmins)}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin domain.Admin
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*domain.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdminNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var admin domain.Admin
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAdminExists
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}

	created := *admin
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdminNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"last_login": at.UTC()}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
