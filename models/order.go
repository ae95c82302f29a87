package models

import "time"

// OrderStatus is the order lifecycle state
type OrderStatus string

// Order status constants
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusTransitions is the directed transition graph. Forward transitions
// move one step at a time; cancellation is reachable from every
// non-terminal state and is itself terminal.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransition reports whether moving from one status to another is legal
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions
func (s OrderStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// IsValid reports whether the status is one of the known states
func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

var statusLabels = map[OrderStatus]string{
	OrderStatusPending:    "Aguardando confirmação",
	OrderStatusConfirmed:  "Pedido confirmado",
	OrderStatusPreparing:  "Preparando seu pedido",
	OrderStatusDispatched: "Saiu para entrega",
	OrderStatusDelivered:  "Pedido entregue",
	OrderStatusCancelled:  "Pedido cancelado",
}

// Label returns the customer-facing description of a status
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// OrderLine is a cart line frozen at order creation time
type OrderLine struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Total returns the line total
func (l OrderLine) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Order is a placed order. Lines are a value snapshot of the cart taken at
// creation; later cart mutations never reach them. Total is computed once
// at creation and stored.
type Order struct {
	ID              string      `json:"id"`
	TrackingCode    string      `json:"tracking_code"`
	CreatedAt       time.Time   `json:"date"`
	Lines           []OrderLine `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Discount        float64     `json:"discount"`
	CouponCode      string      `json:"coupon_code,omitempty"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}
