package nsgifts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAllServices(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/products/get_all_services", r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"id": 1, "name": "Steam Wallet RU", "category_id": 10, "price": 1.05},
			{"id": 2, "name": "PSN Card", "category_id": 11, "price": 25.0}
		]`)
	})

	services, err := client.Catalog.AllServices(context.Background())
	require.NoError(t, err)

	require.Len(t, services, 2)
	assert.Equal(t, int64(1), services[0].ID)
	assert.Equal(t, "Steam Wallet RU", services[0].Name)
	assert.Equal(t, int64(10), services[0].CategoryID)
	assert.Equal(t, 1.05, services[0].Price)
}

func TestCatalogCategories(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/products/get_categories", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id": 10, "name": "Steam"}, {"id": 11, "name": "PlayStation"}]`)
	})

	categories, err := client.Catalog.Categories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Steam", categories[0].Name)
	assert.Equal(t, int64(11), categories[1].ID)
}

func TestCatalogServicesByCategory(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/products/get_services", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		writeJSON(w, http.StatusOK, `[{"id": 3, "name": "Steam Wallet KZ", "category_id": 10, "price": 1.1}]`)
	})

	services, err := client.Catalog.ServicesByCategory(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, float64(10), body["category_id"])
	require.Len(t, services, 1)
	assert.Equal(t, "Steam Wallet KZ", services[0].Name)
}

func TestCatalogServicesByCategory_InvalidID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("invalid input must not reach the server")
		writeJSON(w, http.StatusOK, `[]`)
	})

	_, err := client.Catalog.ServicesByCategory(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, HasKind(err, KindClient))
}
