// Package services holds the state containers behind the storefront API.
// Each container is constructed explicitly with its store so tests can run
// isolated instances; none of them share package-level state.
package services

import (
	"errors"
	"sync"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

// ErrInvalidQuantity rejects non-positive add quantities and negative
// quantity updates
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartService is the cart state container: an ordered list of lines, one
// per product id. Every mutation persists the whole collection.
type CartService struct {
	mu    sync.Mutex
	store storage.Store
	items []models.CartItem
}

// NewCartService loads the persisted cart, degrading to an empty cart when
// nothing (or nothing readable) is stored.
func NewCartService(store storage.Store) *CartService {
	s := &CartService{store: store}
	if err := store.Get(storage.KeyCart, &s.items); err != nil {
		s.items = nil
	}
	return s
}

// persist writes the full collection. Write failures are logged and
// treated as permanent for the session; the in-memory state stays valid.
func (s *CartService) persist() {
	if err := s.store.Put(storage.KeyCart, s.items); err != nil {
		utils.LogError("Failed to persist cart: %v", err)
	}
}

// AddItem adds quantity units of a product to the cart. An existing line
// for the product is incremented; otherwise a new line is appended.
// Returns the resulting line and whether it was newly created.
func (s *CartService) AddItem(product models.Product, quantity int) (models.CartItem, bool, error) {
	if quantity <= 0 {
		return models.CartItem{}, false, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.persist()
			utils.LogInfo("Updated cart quantity for product %d to %d", product.ID, s.items[i].Quantity)
			return s.items[i], false, nil
		}
	}

	line := models.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		UnitPrice:   product.Price,
		Category:    product.Category,
		Quantity:    quantity,
		Description: product.Description,
	}
	s.items = append(s.items, line)
	s.persist()
	utils.LogInfo("Added product %d to cart with quantity %d", product.ID, quantity)
	return line, true, nil
}

// UpdateQuantity sets a line's quantity verbatim. Zero removes the line;
// negative values are rejected. Updating an absent product is a no-op.
func (s *CartService) UpdateQuantity(productID, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		s.RemoveItem(productID)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist()
			utils.LogInfo("Set cart quantity for product %d to %d", productID, quantity)
			return nil
		}
	}
	return nil
}

// RemoveItem removes the product's line. Absent ids are a no-op.
func (s *CartService) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			utils.LogInfo("Removed product %d from cart", productID)
			return
		}
	}
}

// Clear empties the cart and clears its persisted representation
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.store.Delete(storage.KeyCart); err != nil {
		utils.LogError("Failed to clear persisted cart: %v", err)
	}
	utils.LogInfo("Cart cleared")
}

// Items returns a copy of the cart lines in insertion order
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount returns the sum of all line quantities
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice returns the cart subtotal
func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// IsInCart reports whether a product has a line in the cart
func (s *CartService) IsInCart(productID int) bool {
	return s.QuantityOf(productID) > 0
}

// QuantityOf returns the product's line quantity, zero when absent
func (s *CartService) QuantityOf(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}
