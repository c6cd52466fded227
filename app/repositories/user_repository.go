package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
)

// UserRepository handles user lookups and registration inserts.
type UserRepository interface {
	// FindByEmail returns the user with that email, or nil when none exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByCredentials returns the user whose stored credential matches
	// exactly, or nil on no match. The comparison is plain equality; the
	// storefront ships without password hashing.
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)
	// Insert persists a new user. Email uniqueness is enforced only by the
	// caller's pre-check, not by the store.
	Insert(ctx context.Context, user *models.User) error
}

type mongoUserRepository struct {
	col *mongo.Collection
}

// NewUserRepository returns the Mongo-backed user repository.
func NewUserRepository(store *database.Store) UserRepository {
	return &mongoUserRepository{col: store.Users}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) FindByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email, "password": password})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	_, err := r.col.InsertOne(ctx, user)
	return err
}
