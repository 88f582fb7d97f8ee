package predictionguard

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/predictionguard/predictionguard-go/internal/utils"
)

// Version is the client library version reported in the User-Agent header.
const Version = "0.1.0"

const userAgent = "Prediction Guard Go Client v" + Version

// Timeouts applied by the default HTTP client. Callers needing different
// behavior supply their own client via [WithHTTPClient] or adjust the
// overall budget with [WithTimeout].
const (
	// DefaultDialTimeout is the maximum time to establish a TCP connection.
	DefaultDialTimeout = 30 * time.Second
	// DefaultTLSHandshakeTimeout is the maximum time for the TLS handshake.
	DefaultTLSHandshakeTimeout = 10 * time.Second
	// DefaultResponseHeaderTimeout is the maximum time to wait for response
	// headers. Body reads are not bounded by it, which keeps long-lived SSE
	// streams alive.
	DefaultResponseHeaderTimeout = 30 * time.Second
)

// Client talks to the Prediction Guard API. It is safe for concurrent use:
// every call owns its own request, connection and buffers, and the client
// itself is immutable after New.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client during construction.
type Option func(*Client)

// WithAPIKey sets the API key, overriding the PREDICTIONGUARD_API_KEY
// environment variable.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) { c.apiKey = apiKey }
}

// WithHost sets the API host URL, overriding the PREDICTIONGUARD_URL
// environment variable.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithHTTPClient replaces the default HTTP client. Use this to control
// timeouts, proxies or transport settings. The supplied client is used
// as-is; for streaming calls its overall Timeout also bounds how long a
// stream may stay open.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the overall request timeout on the default HTTP client.
// It has no effect when combined with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// New creates a Client. Credentials not supplied through options are
// resolved from the environment via [FromEnv]; a missing value yields a
// *ConfigError.
//
// Example:
//
//	clt, err := predictionguard.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := clt.Chat(ctx, predictionguard.NewChatRequest("Neural-Chat-7B").
//	    AddMessage(predictionguard.RoleUser, "How do you feel about the world?"))
func New(options ...Option) (*Client, error) {
	c := &Client{httpClient: defaultHTTPClient()}

	for _, option := range options {
		option(c)
	}

	if c.apiKey == "" || c.host == "" {
		env, err := FromEnv()
		if err != nil {
			return nil, err
		}
		if c.apiKey == "" {
			c.apiKey = env.APIKey
		}
		if c.host == "" {
			c.host = env.Host
		}
	}

	c.host = strings.TrimSuffix(c.host, "/")

	return c, nil
}

// defaultHTTPClient builds the HTTP client used when the caller does not
// supply one. The overall timeout is left unset so streaming responses are
// not cut off mid-stream; connection establishment is still bounded.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DefaultDialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
			ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			ForceAttemptHTTP2:     true,
		},
	}
}

// Health calls the health endpoint and returns the server's status text.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer utils.CloseWithLog(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newAPIError(resp.StatusCode, body)
	}

	return string(body), nil
}
