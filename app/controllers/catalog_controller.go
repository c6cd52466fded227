package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/foodmart/app/services"
	"github.com/shashiranjanraj/foodmart/pkg/logger"
	"github.com/shashiranjanraj/foodmart/pkg/response"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// Products handles GET /api/products with the filter/pagination query.
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.ProductQuery{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		InStock:  q.Get("inStock"),
		Page:     q.Get("page"),
		Limit:    q.Get("limit"),
	}

	products, pagination, err := c.service.ListProducts(r.Context(), query)
	if err != nil {
		logger.WithCtx(r.Context()).Error("product query failed", "error", err)
		response.Error(w, err)
		return
	}

	response.OK(w, response.M{"products": products, "pagination": pagination})
}

// Featured handles GET /api/products/featured.
func (c *CatalogController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.ListFeatured(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("featured query failed", "error", err)
		response.Error(w, err)
		return
	}

	response.OK(w, response.M{"products": products})
}

// Categories handles GET /api/categories.
func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.ListCategories(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("category query failed", "error", err)
		response.Error(w, err)
		return
	}

	response.OK(w, response.M{"categories": categories})
}
