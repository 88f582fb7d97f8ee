package predictionguard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/predictionguard/predictionguard-go/internal/utils"
)

// maxResponseBodySize caps how much of a response body is read (10 MB),
// preventing unbounded memory allocation from rogue responses.
const maxResponseBodySize int64 = 10 * 1024 * 1024

// newRequest builds a request for the given API path with the standard
// headers attached. A nil body produces a bodyless request (GET).
func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// doPost performs a JSON POST round-trip against path and decodes the
// response into Output.
//
// Error handling strategy:
//   - transport failures (DNS, TLS, timeout, cancellation) are returned as
//     the wrapped *url.Error from the HTTP client, before any server bytes
//   - non-2xx statuses become *APIError with the server's status and body
//   - undecodable 2xx bodies become *DecodeError with a bounded preview
//
// Each call is a single attempt; nothing is retried.
func doPost[Output any](ctx context.Context, c *Client, path string, body any) (*Output, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, jsonBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer utils.CloseWithLog(resp.Body)

	return decodeResponse[Output](resp)
}

// doGet performs a GET round-trip against path with optional query values
// and decodes the response into Output.
func doGet[Output any](ctx context.Context, c *Client, path string, query url.Values) (*Output, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer utils.CloseWithLog(resp.Body)

	return decodeResponse[Output](resp)
}

// decodeResponse reads a buffered response body and maps it to a typed
// value, an *APIError, or a *DecodeError.
func decodeResponse[Output any](resp *http.Response) (*Output, error) {
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	var out Output
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &DecodeError{Payload: utils.TruncateString(string(respBody), 0), Err: err}
	}

	return &out, nil
}

// doPostStream performs a JSON POST against path and returns the response
// with its body left open for SSE consumption. The caller owns the body and
// must close it; on every error path the body is drained and closed here.
func (c *Client) doPostStream(ctx context.Context, path string, body any) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, jsonBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer utils.CloseWithLog(resp.Body)
		errorBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		if readErr != nil {
			return nil, fmt.Errorf("non-2xx status %d (failed to read body: %w)", resp.StatusCode, readErr)
		}
		return nil, newAPIError(resp.StatusCode, errorBody)
	}

	return resp, nil
}
