package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/metrics"
)

// ProductFilter is the normalised catalog query: services fill in the
// documented defaults before it reaches the repository.
type ProductFilter struct {
	Category    string
	Search      string
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	Page        int
	Limit       int
}

// ProductRepository reads the product catalog.
type ProductRepository interface {
	// Find returns one page of products matching the filter plus the total
	// matching count, computed independently of the page slice.
	Find(ctx context.Context, f ProductFilter) ([]models.Product, int64, error)
	// FindFeatured returns up to limit products flagged featured.
	FindFeatured(ctx context.Context, limit int64) ([]models.Product, error)
}

type mongoProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository returns the Mongo-backed product repository.
func NewProductRepository(store *database.Store) ProductRepository {
	return &mongoProductRepository{col: store.Products}
}

// buildProductFilter translates a ProductFilter into the store predicate:
// exact category slug, case-insensitive substring OR across
// name/description/tags, inclusive price range, optional inStock.
func buildProductFilter(f ProductFilter) bson.M {
	query := bson.M{
		"price": bson.M{"$gte": f.MinPrice, "$lte": f.MaxPrice},
	}

	if f.Category != "" {
		query["category"] = f.Category
	}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern}},
			bson.M{"description": bson.M{"$regex": pattern}},
			bson.M{"tags": bson.M{"$in": bson.A{pattern}}},
		}
	}

	if f.InStockOnly {
		query["inStock"] = true
	}

	return query
}

func (r *mongoProductRepository) Find(ctx context.Context, f ProductFilter) ([]models.Product, int64, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	query := buildProductFilter(f)
	skip := int64(f.Page-1) * int64(f.Limit)

	opts := options.Find().SetSkip(skip).SetLimit(int64(f.Limit))
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *mongoProductRepository) FindFeatured(ctx context.Context, limit int64) ([]models.Product, error) {
	defer metrics.ObserveDBQuery("find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"featured": true}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
