package models

import "time"

// User is the authenticated profile as returned by /users/profile and the
// auth endpoints.
type User struct {
	ID        string    `json:"_id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Addresses []Address `json:"addresses,omitempty"`
}

type Address struct {
	ID        string `json:"_id,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	IsFeatured  bool     `json:"isFeatured,omitempty"`
}

// CartLine is one product-and-quantity pairing in the cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSummary mirrors the backend-computed totals. The client never derives
// these locally; they always come from the last backend response.
type CartSummary struct {
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
	ItemCount   int     `json:"itemCount"`
}

// Order status progression: pending -> confirmed -> processing -> shipped ->
// delivered, or terminal cancelled.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

const (
	PaymentCOD     = "cod"
	PaymentGateway = "razorpay"
)

type PaymentDetails struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID              string         `json:"_id"`
	OrderNumber     string         `json:"orderNumber"`
	Items           []OrderItem    `json:"items"`
	ShippingAddress Address        `json:"shippingAddress"`
	PaymentDetails  PaymentDetails `json:"paymentDetails"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"totalAmount"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// Pagination is the page envelope the product listing returns.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}
