package nsgifts

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	retryCount          int
	retryWaitTime       time.Duration
	retryMaxWaitTime    time.Duration
	requestTimeout      time.Duration
	serverErrorCooldown time.Duration
	tokenRefreshBuffer  time.Duration
	requestLogger       RequestLogger
	retryPolicy         func(*resty.Response, error) bool
	requestHeaders      map[string]string
	email               string
	password            string
	authToken           string
}

func newClientOptions() *Options {
	return &Options{
		retryCount:          3,
		retryWaitTime:       500 * time.Millisecond,
		retryMaxWaitTime:    3 * time.Second,
		requestTimeout:      30 * time.Second,
		serverErrorCooldown: 5 * time.Minute,
		tokenRefreshBuffer:  5 * time.Minute,
		requestLogger:       &NoopLogger{},
		retryPolicy:         DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// Validate reports the first invalid option value. It is called by
// [Client.Connect] before the underlying HTTP client is built.
func (o *Options) Validate() error {
	if o.retryCount < 0 {
		return fmt.Errorf("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return fmt.Errorf("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return fmt.Errorf("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return fmt.Errorf("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)",
			o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestTimeout <= 0 {
		return fmt.Errorf("requestTimeout must be positive")
	}

	if o.requestLogger == nil {
		return fmt.Errorf("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return fmt.Errorf("retryPolicy must not be nil")
	}

	if (o.email == "") != (o.password == "") {
		return fmt.Errorf("credentials require both email and password")
	}

	return nil
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.requestTimeout = timeout
		}
	}
}

// WithServerErrorCooldown sets the period during which non-authentication
// calls fail fast after a server error. Zero disables the cooldown.
func WithServerErrorCooldown(cooldown time.Duration) Option {
	return func(o *Options) {
		if cooldown >= 0 {
			o.serverErrorCooldown = cooldown
		}
	}
}

// WithTokenRefreshBuffer sets the margin before token expiry at which the
// client re-authenticates ahead of an API call.
func WithTokenRefreshBuffer(buffer time.Duration) Option {
	return func(o *Options) {
		if buffer >= 0 {
			o.tokenRefreshBuffer = buffer
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithCredentials configures the email and password used for the initial
// login during [Client.Connect] and for automatic token refresh.
func WithCredentials(email, password string) Option {
	return func(o *Options) {
		o.email = email
		o.password = password
	}
}

// WithAuthToken pre-sets a bearer token. A token supplied this way has no
// known expiry and is only replaced after the server rejects it with 401.
func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}
