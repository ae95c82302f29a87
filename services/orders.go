package services

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

var (
	// ErrEmptyCart rejects order creation from an empty snapshot
	ErrEmptyCart = errors.New("cannot create an order from an empty cart")
	// ErrOrderNotFound is returned for unknown order ids
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition rejects status changes outside the transition graph
	ErrInvalidTransition = errors.New("illegal order status transition")
)

const (
	trackingPrefix   = "AB"
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingLength   = 8
)

// OrderCharges carries the checkout-level price adjustments into order
// creation; the subtotal itself always comes from the snapshot.
type OrderCharges struct {
	Shipping   float64
	Discount   float64
	CouponCode string
}

// OrderService is the order state container: an ordered list of placed
// orders, newest first. Orders only accumulate; nothing deletes them.
type OrderService struct {
	mu     sync.Mutex
	store  storage.Store
	orders []models.Order
}

// NewOrderService loads the persisted orders, degrading to empty
func NewOrderService(store storage.Store) *OrderService {
	s := &OrderService{store: store}
	if err := store.Get(storage.KeyOrders, &s.orders); err != nil {
		s.orders = nil
	}
	return s
}

func (s *OrderService) persist() {
	if err := s.store.Put(storage.KeyOrders, s.orders); err != nil {
		utils.LogError("Failed to persist orders: %v", err)
	}
}

// Create places a new order from a cart snapshot. The lines are copied, so
// later mutations of the live cart never reach the stored order. The total
// is computed here once, stored, and never recomputed.
func (s *OrderService) Create(snapshot []models.CartItem, info models.CustomerInfo, charges OrderCharges) (models.Order, error) {
	if len(snapshot) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.OrderLine, len(snapshot))
	subtotal := 0.0
	for i, item := range snapshot {
		lines[i] = models.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	total := utils.Round2(subtotal + charges.Shipping - charges.Discount)
	if total < 0 {
		total = 0
	}

	order := models.Order{
		ID:              s.nextOrderID(),
		TrackingCode:    s.newTrackingCode(),
		CreatedAt:       time.Now(),
		Lines:           lines,
		Subtotal:        utils.Round2(subtotal),
		Shipping:        utils.Round2(charges.Shipping),
		Discount:        utils.Round2(charges.Discount),
		CouponCode:      charges.CouponCode,
		Total:           total,
		Status:          models.OrderStatusPending,
		CustomerName:    info.Name,
		CustomerEmail:   info.Email,
		CustomerPhone:   info.Phone,
		DeliveryAddress: info.Address,
		PaymentMethod:   info.PaymentMethod,
		Notes:           info.Notes,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.persist()
	utils.LogInfo("Created order %s with tracking code %s, total %.2f", order.ID, order.TrackingCode, order.Total)

	return cloneOrder(order), nil
}

// nextOrderID derives an id from the creation time, bumping the millisecond
// value until it no longer collides with an existing order.
func (s *OrderService) nextOrderID() string {
	ms := time.Now().UnixMilli()
	for {
		id := "ORD-" + strconv.FormatInt(ms, 10)
		if s.findByID(id) == nil {
			return id
		}
		ms++
	}
}

// newTrackingCode draws codes until one is unique among existing orders
func (s *OrderService) newTrackingCode() string {
	for {
		b := make([]byte, trackingLength)
		for i := range b {
			b[i] = trackingAlphabet[rand.Intn(len(trackingAlphabet))]
		}
		code := trackingPrefix + string(b)
		if s.findByTrackingCode(code) == nil {
			return code
		}
	}
}

func (s *OrderService) findByID(id string) *models.Order {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i]
		}
	}
	return nil
}

func (s *OrderService) findByTrackingCode(code string) *models.Order {
	for i := range s.orders {
		if strings.EqualFold(s.orders[i].TrackingCode, code) {
			return &s.orders[i]
		}
	}
	return nil
}

// UpdateStatus moves an order along the status transition graph. Forward
// transitions go one step at a time; cancellation is allowed from any
// non-terminal state. Anything else is rejected.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findByID(orderID)
	if order == nil {
		utils.LogInfo("Status update for unknown order %s ignored", orderID)
		return models.Order{}, ErrOrderNotFound
	}
	if !models.CanTransition(order.Status, status) {
		utils.LogError("Rejected status transition %s -> %s for order %s", order.Status, status, orderID)
		return models.Order{}, ErrInvalidTransition
	}

	order.Status = status
	s.persist()
	utils.LogInfo("Order %s moved to status %s", orderID, status)
	return cloneOrder(*order), nil
}

// Cancel cancels an order unless it is already delivered or cancelled
func (s *OrderService) Cancel(orderID string) (models.Order, error) {
	return s.UpdateStatus(orderID, models.OrderStatusCancelled)
}

// ByID finds an order by id
func (s *OrderService) ByID(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order := s.findByID(orderID); order != nil {
		return cloneOrder(*order), nil
	}
	return models.Order{}, ErrOrderNotFound
}

// ByTrackingCode finds an order by tracking code, case-insensitively
func (s *OrderService) ByTrackingCode(code string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order := s.findByTrackingCode(code); order != nil {
		return cloneOrder(*order), nil
	}
	return models.Order{}, ErrOrderNotFound
}

// ByCustomerEmail lists a customer's orders, newest first
func (s *OrderService) ByCustomerEmail(email string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order
	for _, order := range s.orders {
		if strings.EqualFold(order.CustomerEmail, email) {
			out = append(out, cloneOrder(order))
		}
	}
	return out
}

// Orders returns copies of all orders, newest first
func (s *OrderService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i, order := range s.orders {
		out[i] = cloneOrder(order)
	}
	return out
}

// Count returns the number of placed orders
func (s *OrderService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// cloneOrder copies an order including its lines so callers can never
// reach into the stored snapshot.
func cloneOrder(order models.Order) models.Order {
	lines := make([]models.OrderLine, len(order.Lines))
	copy(lines, order.Lines)
	order.Lines = lines
	return order
}
