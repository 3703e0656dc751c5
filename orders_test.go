package nsgifts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersCreate_GeneratesCustomID(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/create_order", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		writeJSON(w, http.StatusOK, `{
			"custom_id": "`+body["custom_id"].(string)+`",
			"status": 1,
			"service_id": 5,
			"quantity": 2,
			"total": 10.5,
			"date": "2025-01-02 10:00:00"
		}`)
	})

	resp, err := client.Orders.Create(context.Background(), OrderRequest{
		ServiceID: 5,
		Quantity:  2,
	})
	require.NoError(t, err)

	// A missing custom_id is filled with a generated UUID
	generated, ok := body["custom_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(generated)
	assert.NoError(t, err)

	assert.Equal(t, generated, resp.CustomID)
	assert.Equal(t, 1, resp.Status)
	assert.Equal(t, int64(5), resp.ServiceID)
	assert.Equal(t, 10.5, resp.Total)
}

func TestOrdersCreate_KeepsCustomID(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		writeJSON(w, http.StatusOK, `{"custom_id": "my-order-1", "status": 1, "service_id": 5, "quantity": 1, "total": 5, "date": "2025-01-02"}`)
	})

	resp, err := client.Orders.Create(context.Background(), OrderRequest{
		ServiceID: 5,
		Quantity:  1,
		CustomID:  "my-order-1",
		Data:      "steam_user",
	})
	require.NoError(t, err)

	assert.Equal(t, "my-order-1", body["custom_id"])
	assert.Equal(t, "steam_user", body["data"])
	assert.Equal(t, "my-order-1", resp.CustomID)
}

func TestOrdersCreate_InvalidRequest(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("invalid input must not reach the server")
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.Orders.Create(context.Background(), OrderRequest{ServiceID: 0, Quantity: 1})
	require.Error(t, err)
	assert.True(t, HasKind(err, KindClient))

	_, err = client.Orders.Create(context.Background(), OrderRequest{ServiceID: 5, Quantity: -1})
	require.Error(t, err)
	assert.True(t, HasKind(err, KindClient))
}

func TestOrdersPay(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/pay_order", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		writeJSON(w, http.StatusOK, `{
			"custom_id": "my-order-1",
			"status": 2,
			"new_balance": "89.50",
			"msg": "paid",
			"pins": ["AAAA-BBBB", "CCCC-DDDD"]
		}`)
	})

	resp, err := client.Orders.Pay(context.Background(), "my-order-1")
	require.NoError(t, err)

	assert.Equal(t, "my-order-1", body["custom_id"])
	assert.Equal(t, 2, resp.Status)
	assert.Equal(t, "89.50", resp.NewBalance)
	assert.Equal(t, "paid", resp.Msg)
	assert.Equal(t, []string{"AAAA-BBBB", "CCCC-DDDD"}, resp.Pins)
}

func TestOrdersPay_EmptyCustomID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("invalid input must not reach the server")
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.Orders.Pay(context.Background(), "")
	require.Error(t, err)
	assert.True(t, HasKind(err, KindClient))
}

func TestOrdersInfo(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/order_info", r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"custom_id": "my-order-1",
			"status": 3,
			"status_message": "completed",
			"product": "Steam Wallet RU",
			"quantity": 2,
			"total_price": 10.5,
			"trade_link": "https://steamcommunity.com/tradeoffer/new/?partner=1",
			"complete_date": "2025-01-02 11:00:00"
		}`)
	})

	info, err := client.Orders.Info(context.Background(), "my-order-1")
	require.NoError(t, err)

	assert.Equal(t, "my-order-1", info.CustomID)
	assert.Equal(t, 3, info.Status)
	assert.Equal(t, "completed", info.StatusMessage)
	assert.Equal(t, "Steam Wallet RU", info.Product)
	assert.Equal(t, 10.5, info.TotalPrice)
	assert.Equal(t, "https://steamcommunity.com/tradeoffer/new/?partner=1", info.TradeLink)
}
