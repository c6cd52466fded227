package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/foodmart/app/services"
	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/auth"
	"github.com/shashiranjanraj/foodmart/pkg/bind"
	"github.com/shashiranjanraj/foodmart/pkg/logger"
	"github.com/shashiranjanraj/foodmart/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Create handles POST /api/orders (auth required).
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var input services.CreateOrderInput
	if err := bind.JSON(r, &input); err != nil {
		// No body means no items.
		if errors.Is(err, bind.ErrEmptyBody) {
			response.Error(w, apperrors.Validation("Order items are required"))
			return
		}
		response.Error(w, apperrors.Validation("Invalid JSON in request body"))
		return
	}

	order, err := c.service.Create(r.Context(), claims, input)
	if err != nil {
		if apperrors.From(err) == nil {
			logger.WithCtx(r.Context()).Error("order create failed", "error", err)
		}
		response.Error(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("order created",
		"order_id", order.ID, "user_id", order.UserID, "total", order.Total)
	response.OK(w, response.M{"order": order})
}

// List handles GET /api/orders (auth required), newest first.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	orders, err := c.service.ListForUser(r.Context(), claims)
	if err != nil {
		if apperrors.From(err) == nil {
			logger.WithCtx(r.Context()).Error("order list failed", "error", err)
		}
		response.Error(w, err)
		return
	}

	response.OK(w, response.M{"orders": orders})
}
