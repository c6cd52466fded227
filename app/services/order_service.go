package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/foodmart/app/models"
	"github.com/shashiranjanraj/foodmart/app/repositories"
	"github.com/shashiranjanraj/foodmart/pkg/apperrors"
	"github.com/shashiranjanraj/foodmart/pkg/auth"
)

// CreateOrderInput is the checkout payload.
type CreateOrderInput struct {
	Items           []models.OrderItem     `json:"items"`
	Total           float64                `json:"total"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// OrderService turns a cart into a persisted order and lists order history.
type OrderService struct {
	orders repositories.OrderRepository
}

func NewOrderService(orders repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Create persists the cart as an order. Items, total, and shipping address
// are stored as supplied: the total is NOT recomputed against catalog
// prices, and no stock is reserved. Checkout is simulated, so the payment
// status is immediately "paid".
func (s *OrderService) Create(ctx context.Context, claims *auth.Claims, input CreateOrderInput) (*models.Order, error) {
	if claims == nil {
		return nil, apperrors.Auth("Unauthorized")
	}

	if len(input.Items) == 0 {
		return nil, apperrors.Validation("Order items are required")
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          claims.UserID,
		Items:           input.Items,
		Total:           input.Total,
		ShippingAddress: input.ShippingAddress,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListForUser returns the caller's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, claims *auth.Claims) ([]models.Order, error) {
	if claims == nil {
		return nil, apperrors.Auth("Unauthorized")
	}
	return s.orders.FindByUser(ctx, claims.UserID)
}
