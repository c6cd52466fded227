package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/app/repositories"
	"github.com/shashiranjanraj/foodmart/app/services"
)

func TestNormalizeFilter_Defaults(t *testing.T) {
	f := services.NormalizeFilter(services.ProductQuery{})

	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, 1000.0, f.MaxPrice)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.False(t, f.InStockOnly)
}

func TestNormalizeFilter_InvalidValuesFallBack(t *testing.T) {
	f := services.NormalizeFilter(services.ProductQuery{
		MinPrice: "abc",
		MaxPrice: "xyz",
		Page:     "0",
		Limit:    "-5",
		InStock:  "yes", // anything but "true" means "no constraint"
	})

	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, 1000.0, f.MaxPrice)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.False(t, f.InStockOnly)
}

func TestNormalizeFilter_ExplicitValues(t *testing.T) {
	f := services.NormalizeFilter(services.ProductQuery{
		Category: "fruits",
		Search:   "organic",
		MinPrice: "1.5",
		MaxPrice: "9.99",
		InStock:  "true",
		Page:     "3",
		Limit:    "5",
	})

	assert.Equal(t, "fruits", f.Category)
	assert.Equal(t, "organic", f.Search)
	assert.Equal(t, 1.5, f.MinPrice)
	assert.Equal(t, 9.99, f.MaxPrice)
	assert.True(t, f.InStockOnly)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 5, f.Limit)
}

func TestListProducts_PaginationMath(t *testing.T) {
	products := new(MockProductRepository)
	svc := services.NewCatalogService(products, new(MockCategoryRepository))

	// 45 matches at 20 per page → 3 pages.
	products.On("Find", mock.Anything, mock.AnythingOfType("repositories.ProductFilter")).
		Return([]models.Product{{ID: "p1"}, {ID: "p2"}}, int64(45), nil).Once()

	items, pagination, err := svc.ListProducts(context.Background(), services.ProductQuery{})
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.Limit)
	assert.Equal(t, int64(45), pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
	products.AssertExpectations(t)
}

func TestListProducts_EmptyResultIsValid(t *testing.T) {
	products := new(MockProductRepository)
	svc := services.NewCatalogService(products, new(MockCategoryRepository))

	products.On("Find", mock.Anything, mock.AnythingOfType("repositories.ProductFilter")).
		Return([]models.Product{}, int64(0), nil).Once()

	items, pagination, err := svc.ListProducts(context.Background(), services.ProductQuery{Category: "frozen"})
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Equal(t, int64(0), pagination.Total)
	assert.Equal(t, 0, pagination.Pages)
}

func TestListProducts_ForwardsNormalizedFilter(t *testing.T) {
	products := new(MockProductRepository)
	svc := services.NewCatalogService(products, new(MockCategoryRepository))

	expected := repositories.ProductFilter{
		Category: "dairy",
		MinPrice: 0,
		MaxPrice: 1000,
		Page:     2,
		Limit:    10,
	}
	products.On("Find", mock.Anything, expected).
		Return([]models.Product{}, int64(0), nil).Once()

	_, _, err := svc.ListProducts(context.Background(), services.ProductQuery{
		Category: "dairy",
		Page:     "2",
		Limit:    "10",
	})
	require.NoError(t, err)
	products.AssertExpectations(t)
}

func TestListFeatured_CapsAtEight(t *testing.T) {
	products := new(MockProductRepository)
	svc := services.NewCatalogService(products, new(MockCategoryRepository))

	products.On("FindFeatured", mock.Anything, int64(8)).
		Return([]models.Product{{ID: "f1", Featured: true}}, nil).Twice()

	first, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)

	// No intervening writes: a second call returns the identical list.
	second, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	products.AssertExpectations(t)
}

func TestListCategories(t *testing.T) {
	categories := new(MockCategoryRepository)
	svc := services.NewCatalogService(new(MockProductRepository), categories)

	all := []models.Category{
		{ID: "c1", Name: "Fruits", Slug: "fruits"},
		{ID: "c2", Name: "Vegetables", Slug: "vegetables"},
	}
	categories.On("All", mock.Anything).Return(all, nil).Once()

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, got)
}
