package nsgifts

import "context"

// WhitelistService manages the IP addresses allowed to use the account's
// API token.
type WhitelistService struct {
	client *Client
}

type whitelistRequest struct {
	IP string `json:"ip" validate:"required,ip4_addr"`
}

// WhitelistAddResult reports the outcome of adding an IP.
type WhitelistAddResult struct {
	Status string `json:"status"`
	Added  string `json:"added"`
}

// WhitelistRemoveResult reports the outcome of removing an IP.
type WhitelistRemoveResult struct {
	Status  string `json:"status"`
	Removed string `json:"removed"`
}

type whitelistListResponse struct {
	IPs []string `json:"ips"`
}

// Add allows API access from the given IPv4 address.
func (s *WhitelistService) Add(ctx context.Context, ip string) (*WhitelistAddResult, error) {
	req := whitelistRequest{IP: ip}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result WhitelistAddResult
	if err := s.client.post(ctx, epWhitelistAdd, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Remove revokes API access from the given IPv4 address.
func (s *WhitelistService) Remove(ctx context.Context, ip string) (*WhitelistRemoveResult, error) {
	req := whitelistRequest{IP: ip}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var result WhitelistRemoveResult
	if err := s.client.post(ctx, epWhitelistRemove, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// List returns all whitelisted IP addresses.
func (s *WhitelistService) List(ctx context.Context) ([]string, error) {
	var resp whitelistListResponse
	if err := s.client.post(ctx, epWhitelistList, nil, &resp); err != nil {
		return nil, err
	}

	return resp.IPs, nil
}
