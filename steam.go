package nsgifts

import "context"

// SteamService covers Steam wallet quotes, currency rates, and gift
// orders. The vendor rate-limits the gift calculation and app catalog
// endpoints; the limits are enforced server-side.
type SteamService struct {
	client *Client
}

// Region selects the Steam store region for pricing.
type Region string

const (
	RegionRU Region = "ru"
	RegionKZ Region = "kz"
	RegionUA Region = "ua"
)

type steamAmountRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type giftCalculateRequest struct {
	SubID  int64  `json:"subId" validate:"required,gt=0"`
	Region Region `json:"region" validate:"required,oneof=ru kz ua"`
}

// GiftOrderRequest describes a Steam gift order. FriendLink must be a
// short-form profile link (https://s.team/p/...).
type GiftOrderRequest struct {
	FriendLink      string `json:"friendLink" validate:"required,max=500,steamlink"`
	SubID           int64  `json:"sub_id" validate:"required,gt=0"`
	Region          Region `json:"region" validate:"required,oneof=ru kz ua"`
	GiftName        string `json:"giftName,omitempty" validate:"omitempty,max=100"`
	GiftDescription string `json:"giftDescription,omitempty" validate:"omitempty,max=500"`
}

// SteamAmount is a RUB to Steam wallet conversion quote.
type SteamAmount struct {
	ExchangeRate float64 `json:"exchange_rate"`
	USDPrice     float64 `json:"usd_price"`
}

// CurrencyRates holds the vendor's Steam currency rates for one date.
type CurrencyRates struct {
	Date   string `json:"date"`
	RUBUSD string `json:"rub/usd"`
	KZTUSD string `json:"kzt/usd"`
	UAHUSD string `json:"uah/usd"`
}

// GiftQuote is the calculated price of a Steam gift in one region.
type GiftQuote struct {
	SubID  int64   `json:"sub_id"`
	Region string  `json:"region"`
	Price  float64 `json:"price"`
}

// GiftOrderResponse is the vendor's gift order creation record.
type GiftOrderResponse struct {
	CustomID  string  `json:"custom_id"`
	Status    int     `json:"status"`
	ServiceID int64   `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	Date      string  `json:"date"`
}

// SteamApp is one catalog entry with per-region sub/package prices.
type SteamApp struct {
	SubID  int64              `json:"sub_id"`
	Name   string             `json:"name"`
	Prices map[string]float64 `json:"prices"`
}

// CalculateAmount quotes the Steam wallet amount received for rub rubles.
func (s *SteamService) CalculateAmount(ctx context.Context, rub int) (*SteamAmount, error) {
	req := steamAmountRequest{Amount: rub}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var amount SteamAmount
	if err := s.client.post(ctx, epSteamAmount, req, &amount); err != nil {
		return nil, err
	}

	return &amount, nil
}

// CurrencyRate returns the vendor's current Steam exchange rates.
func (s *SteamService) CurrencyRate(ctx context.Context) (*CurrencyRates, error) {
	var rates CurrencyRates
	if err := s.client.post(ctx, epSteamCurrencyRate, nil, &rates); err != nil {
		return nil, err
	}

	return &rates, nil
}

// CalculateGift quotes the price of gifting a Steam package in a region.
// Rate limited by the vendor to 1 request per 30 seconds.
func (s *SteamService) CalculateGift(ctx context.Context, subID int64, region Region) (*GiftQuote, error) {
	req := giftCalculateRequest{SubID: subID, Region: region}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var quote GiftQuote
	if err := s.client.post(ctx, epGiftCalculate, req, &quote); err != nil {
		return nil, err
	}

	return &quote, nil
}

// CreateGiftOrder places a gift order. Pay it with
// [SteamService.PayGiftOrder] to deliver the gift.
func (s *SteamService) CreateGiftOrder(ctx context.Context, req GiftOrderRequest) (*GiftOrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp GiftOrderResponse
	if err := s.client.post(ctx, epGiftCreateOrder, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// PayGiftOrder charges the account balance for a gift order and triggers
// delivery.
func (s *SteamService) PayGiftOrder(ctx context.Context, customID string) (*PaymentResponse, error) {
	req := payOrderRequest{CustomID: customID}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp PaymentResponse
	if err := s.client.post(ctx, epGiftPayOrder, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Apps lists Steam sub/package prices per region. Rate limited by the
// vendor to 1 request per 60 seconds.
func (s *SteamService) Apps(ctx context.Context) ([]SteamApp, error) {
	var apps []SteamApp
	if err := s.client.post(ctx, epGiftApps, nil, &apps); err != nil {
		return nil, err
	}

	return apps, nil
}
