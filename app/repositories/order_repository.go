package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
)

// OrderRepository persists and lists orders.
type OrderRepository interface {
	// Insert persists a new order as-is.
	Insert(ctx context.Context, order *models.Order) error
	// FindByUser returns the user's orders, newest first.
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type mongoOrderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository returns the Mongo-backed order repository.
func NewOrderRepository(store *database.Store) OrderRepository {
	return &mongoOrderRepository{col: store.Orders}
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	_, err := r.col.InsertOne(ctx, order)
	return err
}

func (r *mongoOrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
