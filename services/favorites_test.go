package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abreai/abreai-api/storage"
)

func TestFavoritesToggle(t *testing.T) {
	fav := NewFavoritesService(newMemStore())
	item := favoriteOf(testProducts[1])

	assert.True(t, fav.Toggle(item), "first toggle favorites")
	assert.True(t, fav.IsFavorite(1))
	assert.Equal(t, 1, fav.Count())

	assert.False(t, fav.Toggle(item), "second toggle unfavorites")
	assert.False(t, fav.IsFavorite(1))
	assert.Zero(t, fav.Count())
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	fav := NewFavoritesService(newMemStore())
	fav.Toggle(favoriteOf(testProducts[2]))
	fav.Toggle(favoriteOf(testProducts[1]))
	fav.Toggle(favoriteOf(testProducts[3]))

	items := fav.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{items[0].ProductID, items[1].ProductID, items[2].ProductID})
}

func TestFavoritesPersistAcrossInstances(t *testing.T) {
	store := newMemStore()
	first := NewFavoritesService(store)
	first.Toggle(favoriteOf(testProducts[3]))

	second := NewFavoritesService(store)
	assert.True(t, second.IsFavorite(3))
}

func TestFavoritesDegradeToEmptyOnCorruptState(t *testing.T) {
	store := newMemStore()
	store.data[storage.KeyFavorites] = []byte("{not json")

	fav := NewFavoritesService(store)
	assert.Zero(t, fav.Count())
}
