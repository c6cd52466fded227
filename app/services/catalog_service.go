package services

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/app/repositories"
	"github.com/shashiranjanraj/foodmart/pkg/cache"
)

// Documented filter defaults: missing or invalid values fall back to these
// instead of erroring.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
	DefaultPage     = 1
	DefaultLimit    = 20

	// FeaturedLimit caps the featured list regardless of how many
	// products carry the flag.
	FeaturedLimit = 8

	catalogCacheTTL    = 60 * time.Second
	featuredCacheKey   = "catalog:featured"
	categoriesCacheKey = "catalog:categories"
)

// ProductQuery carries the raw query-string values from the request.
type ProductQuery struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	InStock  string
	Page     string
	Limit    string
}

// Pagination is the page metadata returned beside a product slice.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// CatalogService answers catalog browsing and search queries.
type CatalogService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
}

func NewCatalogService(products repositories.ProductRepository, categories repositories.CategoryRepository) *CatalogService {
	return &CatalogService{products: products, categories: categories}
}

// NormalizeFilter applies the documented defaults to the raw query values.
// Non-positive page/limit count as invalid, since they would produce a
// negative skip.
func NormalizeFilter(q ProductQuery) repositories.ProductFilter {
	return repositories.ProductFilter{
		Category:    q.Category,
		Search:      q.Search,
		MinPrice:    parseFloat(q.MinPrice, DefaultMinPrice),
		MaxPrice:    parseFloat(q.MaxPrice, DefaultMaxPrice),
		InStockOnly: q.InStock == "true",
		Page:        parsePositiveInt(q.Page, DefaultPage),
		Limit:       parsePositiveInt(q.Limit, DefaultLimit),
	}
}

// ListProducts returns one filtered page plus pagination metadata. Total is
// counted independently of the page slice; pages = ceil(total/limit). An
// empty result is valid, not an error.
func (s *CatalogService) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, Pagination, error) {
	f := NormalizeFilter(q)

	products, total, err := s.products.Find(ctx, f)
	if err != nil {
		return nil, Pagination{}, err
	}

	return products, Pagination{
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

// ListFeatured returns up to FeaturedLimit featured products, served from
// the cache when warm.
func (s *CatalogService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(ctx, featuredCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.products.FindFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(ctx, featuredCacheKey, products, catalogCacheTTL)
	return products, nil
}

// ListCategories returns all categories in natural store order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if cache.Get(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(ctx, categoriesCacheKey, categories, catalogCacheTTL)
	return categories, nil
}

func parseFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
