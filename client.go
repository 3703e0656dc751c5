package nsgifts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production NS.Gifts API endpoint, used when [New]
// is called with an empty base URL.
const DefaultBaseURL = "https://api.ns.gifts"

// defaultTokenTTL is assumed when a token response carries no expiry.
const defaultTokenTTL = 90 * time.Minute

// Client is an NS.Gifts API client. Create one with [New], configure it
// with [Option] functions, and call [Client.Connect] before use. All API
// operations live on the facade services (User, Catalog, Orders, Steam,
// Whitelist). A Client is safe for concurrent use once connected.
type Client struct {
	baseURL   string
	options   *Options
	rst       *resty.Client
	connected bool

	mu          sync.Mutex // guards token and credential state
	token       string
	tokenExpiry time.Time
	email       string
	password    string

	authMu sync.Mutex // serializes login round trips

	cooldownMu  sync.Mutex
	serverErrAt time.Time

	User      *UserService
	Catalog   *CatalogService
	Orders    *OrdersService
	Steam     *SteamService
	Whitelist *WhitelistService
}

// New creates a client for the given base URL. An empty baseURL selects
// [DefaultBaseURL]. Options with invalid values are ignored; the remaining
// configuration is validated by [Client.Connect].
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	c := &Client{
		baseURL:  baseURL,
		options:  options,
		token:    options.authToken,
		email:    options.email,
		password: options.password,
	}

	c.User = &UserService{client: c}
	c.Catalog = &CatalogService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Steam = &SteamService{client: c}
	c.Whitelist = &WhitelistService{client: c}

	return c
}

// Connect validates the configuration, builds the underlying HTTP client
// and, when credentials were supplied via [WithCredentials], performs the
// initial login. Calling Connect on an already connected client is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return errors.New("nsgifts client is nil")
	}

	if c.connected {
		return nil
	}

	if c.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if err := c.options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c.rst = resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.options.requestTimeout).
		SetRetryCount(c.options.retryCount).
		SetRetryWaitTime(c.options.retryWaitTime).
		SetRetryMaxWaitTime(c.options.retryMaxWaitTime).
		SetHeaders(c.options.requestHeaders).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return c.options.retryPolicy(r, err)
		})

	c.connected = true

	if email, password := c.credentials(); email != "" && password != "" {
		if err := c.refreshToken(ctx); err != nil {
			c.connected = false
			c.rst = nil
			return fmt.Errorf("failed to authenticate with NS.Gifts API: %w", err)
		}
	}

	return nil
}

// Close releases idle connections held by the client. The client can be
// reconnected with [Client.Connect] afterwards.
func (c *Client) Close() {
	if c == nil || c.rst == nil {
		return
	}

	c.rst.GetClient().CloseIdleConnections()
	c.connected = false
}

// post dispatches an authenticated call to a vendor endpoint, decoding the
// JSON response into out when it is non-nil. It enforces the server-error
// cooldown and refreshes the bearer token ahead of expiry.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	if err := c.ready(); err != nil {
		return err
	}

	if err := c.checkCooldown(); err != nil {
		return err
	}

	if err := c.ensureValidToken(ctx); err != nil {
		return err
	}

	return c.execute(ctx, endpoint, body, out, false, true)
}

// ready guards facade entry points against use before Connect.
func (c *Client) ready() error {
	if c == nil {
		return errors.New("nsgifts client is nil")
	}

	if !c.connected {
		return errors.New("client not connected - call Connect() first")
	}

	return nil
}

// execute performs one vendor call plus transport-level retries. A 401 on
// a non-auth call triggers a single token refresh and one replay of the
// original request; allowRefresh guards against refresh loops.
func (c *Client) execute(ctx context.Context, endpoint string, body, out any, authRequest, allowRefresh bool) error {
	req := c.rst.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}

	if out != nil {
		req.SetResult(out)
	}

	if tok := c.currentToken(); tok != "" && !authRequest {
		req.SetHeader("Authorization", "Bearer "+tok)
	}

	c.options.requestLogger.Debugf("POST %s", endpoint)

	resp, err := req.Post(endpoint)
	if err != nil {
		kind, label := KindConnection, "connection error"
		if isTimeout(err) {
			kind, label = KindTimeout, "request timeout"
		}

		msg := fmt.Sprintf("%s for POST %s after %d retries: %v", label, endpoint, c.options.retryCount, err)
		c.options.requestLogger.Errorf("%s", msg)

		return &APIError{Kind: kind, Message: msg, err: err}
	}

	if resp.IsError() {
		status := resp.StatusCode()

		if status == 401 && !authRequest && allowRefresh {
			c.options.requestLogger.Warnf("received 401 for POST %s, refreshing token", endpoint)

			if rerr := c.refreshToken(ctx); rerr != nil {
				return authError("authentication failed after token refresh", rerr)
			}

			return c.execute(ctx, endpoint, body, out, authRequest, false)
		}

		if status >= 500 {
			c.armCooldown()
		}

		apiErr := FromHTTPStatus(status, errorMessage(resp))
		c.options.requestLogger.Errorf("POST %s failed: %v", endpoint, apiErr)

		return apiErr
	}

	return nil
}

// ensureValidToken re-authenticates when the token is missing or inside
// the refresh buffer. Tokens supplied via [WithAuthToken] have no known
// expiry and are treated as valid until the server rejects them.
func (c *Client) ensureValidToken(ctx context.Context) error {
	if c.tokenValid() {
		return nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	// Re-check under the lock; a concurrent caller may have refreshed.
	if c.tokenValid() {
		return nil
	}

	email, password := c.credentials()
	if email == "" || password == "" {
		if c.currentToken() == "" {
			return authError("authentication required: call Login or Signup first", nil)
		}

		return authError("token expired and no credentials are set for refresh", nil)
	}

	if _, err := c.authenticate(ctx, email, password); err != nil {
		return err
	}

	c.options.requestLogger.Debugf("token refreshed for %s", email)

	return nil
}

// refreshToken forces a new login regardless of the current token state.
func (c *Client) refreshToken(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	email, password := c.credentials()
	if email == "" || password == "" {
		return authError("no credentials are set for token refresh", nil)
	}

	_, err := c.authenticate(ctx, email, password)

	return err
}

// authenticate performs the login round trip and stores the returned
// token. Callers hold authMu.
func (c *Client) authenticate(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := loginRequest{Email: email, Password: password}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := c.execute(ctx, epLogin, req, &resp, true, false); err != nil {
		return nil, err
	}

	c.storeToken(resp.AccessToken, resp.ValidThru)

	return &resp, nil
}

// storeToken records a token from a login or signup response. A validThru
// of zero falls back to the default TTL.
func (c *Client) storeToken(token string, validThru int64) {
	if token == "" {
		return
	}

	expiry := time.Now().Add(defaultTokenTTL)
	if validThru > 0 {
		expiry = time.Unix(validThru, 0)
	}

	c.mu.Lock()
	c.token = token
	c.tokenExpiry = expiry
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.token
}

func (c *Client) tokenValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == "" {
		return false
	}

	if c.tokenExpiry.IsZero() {
		return true
	}

	return time.Until(c.tokenExpiry) > c.options.tokenRefreshBuffer
}

func (c *Client) setCredentials(email, password string) {
	c.mu.Lock()
	c.email = email
	c.password = password
	c.mu.Unlock()
}

func (c *Client) credentials() (email, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.email, c.password
}

// checkCooldown fails fast with a server-kind error while the cooldown
// window after a server error is still open.
func (c *Client) checkCooldown() error {
	if c.options.serverErrorCooldown <= 0 {
		return nil
	}

	c.cooldownMu.Lock()
	defer c.cooldownMu.Unlock()

	if c.serverErrAt.IsZero() {
		return nil
	}

	remaining := c.options.serverErrorCooldown - time.Since(c.serverErrAt)
	if remaining > 0 {
		return &APIError{
			Kind:    KindServer,
			Message: fmt.Sprintf("server error cooldown active, retry in %s", remaining.Round(time.Second)),
		}
	}

	c.serverErrAt = time.Time{}

	return nil
}

func (c *Client) armCooldown() {
	c.cooldownMu.Lock()
	c.serverErrAt = time.Now()
	c.cooldownMu.Unlock()
}

// IsServerErrorDetected reports whether the client is inside the cooldown
// window that follows a server error.
func (c *Client) IsServerErrorDetected() bool {
	if c == nil {
		return false
	}

	c.cooldownMu.Lock()
	defer c.cooldownMu.Unlock()

	if c.serverErrAt.IsZero() {
		return false
	}

	if time.Since(c.serverErrAt) >= c.options.serverErrorCooldown {
		c.serverErrAt = time.Time{}
		return false
	}

	return true
}

// ResetServerErrorState clears the cooldown so requests flow immediately.
func (c *Client) ResetServerErrorState() {
	if c == nil {
		return
	}

	c.cooldownMu.Lock()
	c.serverErrAt = time.Time{}
	c.cooldownMu.Unlock()

	c.options.requestLogger.Debugf("server error state reset")
}

// errorMessage extracts a human-readable message from an error response
// body: the JSON "detail" or "error" field when present, the raw body
// otherwise. An empty body yields an empty string so [FromHTTPStatus] can
// substitute its per-status default.
func errorMessage(resp *resty.Response) string {
	body := resp.Body()
	if len(body) == 0 {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "error"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return msg
			}
		}
	}

	return string(body)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
