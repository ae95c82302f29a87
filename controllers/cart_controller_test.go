package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abreai/abreai-api/services"
	"github.com/abreai/abreai-api/storage"
)

type memStore struct {
	data map[string]json.RawMessage
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

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cart := NewCartController(services.NewCartService(newMemStore()))
	router := gin.New()
	router.GET("/cart", cart.Get)
	router.POST("/cart", cart.Add)
	router.PUT("/cart/:id", cart.Update)
	router.DELETE("/cart/:id", cart.Remove)
	router.DELETE("/cart", cart.Clear)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Status  string         `json:"status"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestCartEndpointsRoundTrip(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["item_count"])
	assert.InDelta(t, 259.80, data["total_price"].(float64), 0.001)

	// Re-adding increments the same line
	w = doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, float64(3), data["item_count"])

	w = doJSON(t, router, http.MethodPut, "/cart/1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, float64(0), data["item_count"])
}

func TestCartAddUnknownProduct(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartAddRejectsNegativeQuantity(t *testing.T) {
	router := newCartRouter(t)

	w := doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 1, "quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartUpdateRejectsNegativeQuantity(t *testing.T) {
	router := newCartRouter(t)
	doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 1, "quantity": 1})

	w := doJSON(t, router, http.MethodPut, "/cart/1", gin.H{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartClear(t *testing.T) {
	router := newCartRouter(t)
	doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 1, "quantity": 2})
	doJSON(t, router, http.MethodPost, "/cart", gin.H{"product_id": 4, "quantity": 1})

	w := doJSON(t, router, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(0), data["item_count"])
}
