package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/foodmart/pkg/response"
)

// MetaController serves the root banner and the health probe.
type MetaController struct{}

func NewMetaController() *MetaController {
	return &MetaController{}
}

func (c *MetaController) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.M{"message": "Food Mart API is running!"})
}

func (c *MetaController) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, response.M{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
