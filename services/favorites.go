package services

import (
	"sync"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

// FavoritesService is the favorites state container: a set of product
// summaries keyed by product id with toggle semantics.
type FavoritesService struct {
	mu    sync.Mutex
	store storage.Store
	items []models.FavoriteItem
}

// NewFavoritesService loads the persisted favorites, degrading to empty
func NewFavoritesService(store storage.Store) *FavoritesService {
	s := &FavoritesService{store: store}
	if err := store.Get(storage.KeyFavorites, &s.items); err != nil {
		s.items = nil
	}
	return s
}

func (s *FavoritesService) persist() {
	if err := s.store.Put(storage.KeyFavorites, s.items); err != nil {
		utils.LogError("Failed to persist favorites: %v", err)
	}
}

// Toggle adds the item when absent and removes it when present. Returns
// true when the item ended up favorited.
func (s *FavoritesService) Toggle(item models.FavoriteItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			utils.LogInfo("Removed product %d from favorites", item.ProductID)
			return false
		}
	}

	s.items = append(s.items, item)
	s.persist()
	utils.LogInfo("Added product %d to favorites", item.ProductID)
	return true
}

// IsFavorite reports whether the product is favorited
func (s *FavoritesService) IsFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of favorited products
func (s *FavoritesService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a copy of the favorites in insertion order
func (s *FavoritesService) Items() []models.FavoriteItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FavoriteItem, len(s.items))
	copy(out, s.items)
	return out
}
