package models

// Product is a catalog item. Products are seeded once and read-only from
// then on; there is no update path. Field names match the stored documents
// (camelCase), and Mongo's own _id is deliberately absent so it never leaks
// into API responses.
type Product struct {
	ID            string            `bson:"id" json:"id"`
	Name          string            `bson:"name" json:"name"`
	Description   string            `bson:"description" json:"description"`
	Price         float64           `bson:"price" json:"price"`
	OriginalPrice float64           `bson:"originalPrice" json:"originalPrice"`
	Discount      int               `bson:"discount" json:"discount"`
	Image         string            `bson:"image" json:"image"`
	Category      string            `bson:"category" json:"category"`
	InStock       bool              `bson:"inStock" json:"inStock"`
	Rating        float64           `bson:"rating" json:"rating"`
	Featured      bool              `bson:"featured" json:"featured"`
	Tags          []string          `bson:"tags" json:"tags"`
	NutritionInfo map[string]string `bson:"nutritionInfo,omitempty" json:"nutritionInfo,omitempty"`
}

// Category groups products. The slug is the sole join key against
// Product.Category; nothing in the store enforces it.
type Category struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Slug        string `bson:"slug" json:"slug"`
	Description string `bson:"description" json:"description"`
}
