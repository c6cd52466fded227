// Package seeders inserts the fixed sample catalog on a cold start.
package seeders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/pkg/database"
	"github.com/shashiranjanraj/foodmart/pkg/logger"
)

// Run seeds categories, products, and the fixed test user, but only when the
// product collection is empty. The emptiness gate is what makes re-runs
// harmless; it is not atomic, so two cold-start requests racing past it can
// both seed. A failure mid-seed likewise leaves a mixed state. Both are
// accepted limitations.
func Run(ctx context.Context, store *database.Store) error {
	count, err := store.Products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding sample catalog")

	categories := make([]interface{}, 0, len(sampleCategories()))
	for _, c := range sampleCategories() {
		categories = append(categories, c)
	}
	if _, err := store.Categories.InsertMany(ctx, categories); err != nil {
		return err
	}

	products := make([]interface{}, 0, len(sampleProducts()))
	for _, p := range sampleProducts() {
		products = append(products, p)
	}
	if _, err := store.Products.InsertMany(ctx, products); err != nil {
		return err
	}

	// Fixed user for login testing.
	testUser := models.User{
		ID:        uuid.NewString(),
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "password123",
		CreatedAt: time.Now().UTC(),
		Orders:    []string{},
	}
	if _, err := store.Users.InsertOne(ctx, testUser); err != nil {
		return err
	}

	return nil
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: uuid.NewString(), Name: "Fruits", Slug: "fruits", Description: "Fresh seasonal fruits"},
		{ID: uuid.NewString(), Name: "Vegetables", Slug: "vegetables", Description: "Farm fresh vegetables"},
		{ID: uuid.NewString(), Name: "Dairy & Eggs", Slug: "dairy", Description: "Fresh dairy products and eggs"},
		{ID: uuid.NewString(), Name: "Snacks & Beverages", Slug: "snacks", Description: "Tasty snacks and refreshing beverages"},
		{ID: uuid.NewString(), Name: "Pantry Staples", Slug: "pantry", Description: "Essential pantry items"},
		{ID: uuid.NewString(), Name: "Frozen Foods", Slug: "frozen", Description: "High-quality frozen products"},
	}
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			ID:            uuid.NewString(),
			Name:          "Organic Bananas",
			Description:   "Sweet and nutritious organic bananas, perfect for breakfast or snacks.",
			Price:         2.99,
			OriginalPrice: 3.49,
			Discount:      14,
			Image:         "https://images.unsplash.com/photo-1607349913338-fca6f7fc42d0?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "fruits",
			InStock:       true,
			Rating:        4.5,
			Featured:      true,
			Tags:          []string{"organic", "healthy", "vitamin"},
			NutritionInfo: map[string]string{"calories": "89 per 100g", "fiber": "2.6g", "potassium": "358mg"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Fresh Spinach Bundle",
			Description:   "Crisp and fresh spinach leaves, rich in iron and vitamins.",
			Price:         3.49,
			OriginalPrice: 3.99,
			Discount:      13,
			Image:         "https://images.unsplash.com/photo-1542838132-92c53300491e?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "vegetables",
			InStock:       true,
			Rating:        4.7,
			Featured:      true,
			Tags:          []string{"fresh", "iron-rich", "leafy-green"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Pacific Barista Oat Milk",
			Description:   "Creamy oat milk perfect for coffee, cereal, and baking.",
			Price:         4.99,
			OriginalPrice: 5.49,
			Discount:      9,
			Image:         "https://images.unsplash.com/photo-1587790032594-babe1292cede?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "dairy",
			InStock:       true,
			Rating:        4.6,
			Featured:      true,
			Tags:          []string{"plant-based", "barista", "oat-milk"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Green Bean Medley",
			Description:   "Premium quality green beans, ready to cook and serve.",
			Price:         1.99,
			OriginalPrice: 2.29,
			Discount:      13,
			Image:         "https://images.unsplash.com/photo-1584473457406-6240486418e9?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "vegetables",
			InStock:       true,
			Rating:        4.3,
			Featured:      false,
			Tags:          []string{"canned", "ready-to-eat", "protein"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Mixed Fruit Basket",
			Description:   "A delightful mix of seasonal fruits in a convenient basket.",
			Price:         12.99,
			OriginalPrice: 14.99,
			Discount:      13,
			Image:         "https://images.unsplash.com/photo-1588964895597-cfccd6e2dbf9?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "fruits",
			InStock:       true,
			Rating:        4.8,
			Featured:      true,
			Tags:          []string{"variety", "gift-basket", "seasonal"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Organic Strawberries",
			Description:   "Sweet and juicy organic strawberries, perfect for desserts.",
			Price:         5.99,
			OriginalPrice: 6.99,
			Discount:      14,
			Image:         "https://images.unsplash.com/photo-1607349913338-fca6f7fc42d0?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "fruits",
			InStock:       false,
			Rating:        4.9,
			Featured:      false,
			Tags:          []string{"organic", "berries", "antioxidants"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Fresh Whole Milk",
			Description:   "Rich and creamy whole milk from local farms.",
			Price:         3.79,
			OriginalPrice: 4.29,
			Discount:      12,
			Image:         "https://images.unsplash.com/photo-1587790032594-babe1292cede?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "dairy",
			InStock:       true,
			Rating:        4.4,
			Featured:      true,
			Tags:          []string{"fresh", "local", "calcium"},
		},
		{
			ID:            uuid.NewString(),
			Name:          "Artisan Crackers",
			Description:   "Gourmet crackers perfect for cheese and spreads.",
			Price:         4.49,
			OriginalPrice: 4.99,
			Discount:      10,
			Image:         "https://images.unsplash.com/photo-1584473457406-6240486418e9?crop=entropy&cs=srgb&fm=jpg&q=85",
			Category:      "snacks",
			InStock:       true,
			Rating:        4.2,
			Featured:      true,
			Tags:          []string{"artisan", "gourmet", "party"},
		},
	}
}
