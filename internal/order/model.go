package order

import "time"

const (
	StatusPending        = "pending"
	PaymentStatusPending = "pending"
)

type Customer struct {
	Name            string `json:"customer_name"`
	Phone           string `json:"customer_phone"`
	Email           string `json:"customer_email"`
	ShippingAddress string `json:"shipping_address"`
}

// Order is the checkout handoff record. Submitting it is the payment
// collaborator's job; nothing here persists it.
type Order struct {
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
