package models

import "time"

// Order statuses. Orders are created as pending and never mutated by this
// service; no fulfillment pipeline exists.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem is a line item: the product snapshot the client had in its cart
// plus the ordered quantity.
type OrderItem struct {
	Product  `bson:",inline"`
	Quantity int `bson:"quantity" json:"quantity"`
}

// ShippingAddress is the structured delivery address collected at checkout.
type ShippingAddress struct {
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	ZipCode  string `bson:"zipCode" json:"zipCode"`
	Country  string `bson:"country" json:"country"`
}

// Order is a placed order. Total is persisted as the client supplied it;
// the service does not recompute it against catalog prices.
type Order struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"userId" json:"userId"`
	Items           []OrderItem     `bson:"items" json:"items"`
	Total           float64         `bson:"total" json:"total"`
	ShippingAddress ShippingAddress `bson:"shippingAddress" json:"shippingAddress"`
	Status          string          `bson:"status" json:"status"`
	PaymentStatus   string          `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}
