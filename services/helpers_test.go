package services

import (
	"encoding/json"
	"errors"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/storage"
)

// memStore is an in-memory Store for tests
type memStore struct {
	data    map[string]json.RawMessage
	failPut bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]json.RawMessage)}
}

func (m *memStore) Get(key string, dest any) error {
	raw, ok := m.data[key]
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return storage.ErrNotFound
	}
	return nil
}

func (m *memStore) Put(key string, value any) error {
	if m.failPut {
		return errors.New("store write failed")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

var testProducts = map[int]models.Product{
	1: {ID: 1, Name: "Kit Boteco Clássico", Price: 129.90, Category: models.CategoryRolee, Description: "Cervejas artesanais e petiscos"},
	2: {ID: 2, Name: "Cesta Café da Manhã", Price: 99.90, Category: models.CategoryCafe, Description: "Pães, geleias e café especial"},
	3: {ID: 3, Name: "Cesta Romântica", Price: 189.90, Category: models.CategoryNamorados, Description: "Espumante, chocolates e velas"},
}

func favoriteOf(p models.Product) models.FavoriteItem {
	return models.FavoriteItem{
		ProductID:   p.ID,
		Name:        p.Name,
		UnitPrice:   p.Price,
		Category:    p.Category,
		Description: p.Description,
	}
}
