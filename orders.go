package nsgifts

import (
	"context"

	"github.com/google/uuid"
)

// OrdersService creates, pays, and tracks orders. Orders are created
// unpaid and paid separately with [OrdersService.Pay].
type OrdersService struct {
	client *Client
}

// OrderRequest describes a new order. CustomID is the caller's tracking
// identifier; when empty a random UUID is generated. Data carries extra
// service-specific input such as a Steam username.
type OrderRequest struct {
	ServiceID int64   `json:"service_id" validate:"required,gt=0"`
	Quantity  float64 `json:"quantity" validate:"required,gt=0"`
	CustomID  string  `json:"custom_id" validate:"required,max=255"`
	Data      string  `json:"data,omitempty" validate:"omitempty,max=1000"`
}

type payOrderRequest struct {
	CustomID string `json:"custom_id" validate:"required,max=255"`
}

// OrderResponse is the vendor's order creation record.
type OrderResponse struct {
	CustomID     string   `json:"custom_id"`
	Status       int      `json:"status"`
	ServiceID    int64    `json:"service_id"`
	Quantity     float64  `json:"quantity"`
	Total        float64  `json:"total"`
	Date         string   `json:"date"`
	Data         string   `json:"data"`
	PinCode      []string `json:"pin_code"`
	TradeLink    string   `json:"trade_link"`
	CompleteDate string   `json:"complete_date"`
}

// PaymentResponse is the result of paying an order.
type PaymentResponse struct {
	CustomID   string   `json:"custom_id"`
	Status     int      `json:"status"`
	NewBalance string   `json:"new_balance"`
	Msg        string   `json:"msg"`
	Pins       []string `json:"pins"`
}

// OrderInfo is the detailed order record returned by the info endpoint.
type OrderInfo struct {
	CustomID      string   `json:"custom_id"`
	Status        int      `json:"status"`
	StatusMessage string   `json:"status_message"`
	Product       string   `json:"product"`
	Quantity      float64  `json:"quantity"`
	TotalPrice    float64  `json:"total_price"`
	Data          string   `json:"data"`
	Pins          []string `json:"pins"`
	TradeLink     string   `json:"trade_link"`
	CompleteDate  string   `json:"complete_date"`
}

// Create places a new unpaid order. A missing CustomID is filled with a
// generated UUID so the order can always be referenced later.
func (s *OrdersService) Create(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	if req.CustomID == "" {
		req.CustomID = uuid.NewString()
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp OrderResponse
	if err := s.client.post(ctx, epCreateOrder, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Pay charges the account balance for an existing order.
func (s *OrdersService) Pay(ctx context.Context, customID string) (*PaymentResponse, error) {
	req := payOrderRequest{CustomID: customID}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp PaymentResponse
	if err := s.client.post(ctx, epPayOrder, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Info returns the current state of an order.
func (s *OrdersService) Info(ctx context.Context, customID string) (*OrderInfo, error) {
	req := payOrderRequest{CustomID: customID}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var info OrderInfo
	if err := s.client.post(ctx, epOrderInfo, req, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
