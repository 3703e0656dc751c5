package nsgifts

import "context"

// UserService handles authentication and profile operations.
type UserService struct {
	client *Client
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=255"`
	Email    string `json:"email" validate:"required,max=255"`
}

// LoginResponse carries the bearer token issued by the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ValidThru   int64  `json:"valid_thru"`
	UserID      int64  `json:"user_id"`
}

// SignupResponse carries the bearer token issued on registration. The
// signup endpoint reports no expiry; the client assumes a default TTL.
type SignupResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserInfo is the account profile returned by the user endpoint.
type UserInfo struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Login    string   `json:"login"`
	Rights   []string `json:"rights"`
	Balance  float64  `json:"balance"`
}

// Login exchanges credentials for a bearer token. The credentials and the
// token are stored on the client; subsequent calls refresh the token
// automatically when it nears expiry.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if err := s.client.ready(); err != nil {
		return nil, err
	}

	s.client.setCredentials(email, password)

	s.client.authMu.Lock()
	defer s.client.authMu.Unlock()

	return s.client.authenticate(ctx, email, password)
}

// Signup registers a new account. The returned token is stored on the
// client and the account is usable immediately.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*SignupResponse, error) {
	if err := s.client.ready(); err != nil {
		return nil, err
	}

	req := signupRequest{Username: username, Password: password, Email: email}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	s.client.setCredentials(email, password)

	var resp SignupResponse
	if err := s.client.execute(ctx, epSignup, req, &resp, true, false); err != nil {
		return nil, err
	}

	s.client.storeToken(resp.AccessToken, 0)

	return &resp, nil
}

// CheckBalance returns the current account balance.
func (s *UserService) CheckBalance(ctx context.Context) (float64, error) {
	var balance float64
	if err := s.client.post(ctx, epCheckBalance, nil, &balance); err != nil {
		return 0, err
	}

	return balance, nil
}

// Info returns the account profile.
func (s *UserService) Info(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := s.client.post(ctx, epUserInfo, nil, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
