// Package nsgifts provides an HTTP client for the NS.Gifts e-commerce API.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries,
// bearer-token lifecycle management, and pluggable logging. API operations
// are grouped into facade services: [UserService] for authentication and
// profile calls, [CatalogService] for service listings, [OrdersService]
// for order creation and payment, [SteamService] for Steam price quotes
// and gift orders, and [WhitelistService] for IP whitelist management.
//
// # Basic Usage
//
//	c := nsgifts.New("",
//	    nsgifts.WithCredentials("me@example.com", "secret"),
//	    nsgifts.WithRetryCount(5),
//	)
//
//	if err := c.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	balance, err := c.User.CheckBalance(ctx)
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
// [ConfigFromEnv] loads the same settings from NSGIFTS_* environment
// variables (with optional .env file support) and [Config.Client] turns
// them into a ready-to-connect client.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries on HTTP 429 (rate limit) and 5xx server
// errors, and on transient connection errors. Context cancellation,
// deadline exceeded, and DNS resolution errors are never retried. When
// retries are exhausted on a 5xx response the client enters a cooldown
// period during which non-authentication calls fail fast with a
// server-kind [*APIError]; see [Client.IsServerErrorDetected] and
// [Client.ResetServerErrorState]. Supply a custom function via
// [WithRetryPolicy] to override the retry condition.
//
// # Authentication
//
// [UserService.Login] and [UserService.Signup] obtain a bearer token that
// is stored on the client and attached to every subsequent request. The
// token is refreshed automatically when it is within the configured
// refresh buffer of its expiry, and once more if the server answers 401.
// A static token can be supplied with [WithAuthToken]; credentials given
// via [WithCredentials] are used to log in during [Client.Connect].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use [NewLogrusLogger] for a
// ready-made [github.com/sirupsen/logrus] adapter. The default
// [NoopLogger] discards all log output. Ensure your implementation
// redacts credentials and tokens from request and response bodies before
// persisting logs.
package nsgifts
