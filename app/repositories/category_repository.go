package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
)

// CategoryRepository reads the category list.
type CategoryRepository interface {
	// All returns every category in natural store order.
	All(ctx context.Context) ([]models.Category, error)
}

type mongoCategoryRepository struct {
	col *mongo.Collection
}

// NewCategoryRepository returns the Mongo-backed category repository.
func NewCategoryRepository(store *database.Store) CategoryRepository {
	return &mongoCategoryRepository{col: store.Categories}
}

func (r *mongoCategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
