package predictionguard

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/predictionguard/predictionguard-go/internal/utils"
)

// ErrStreamTruncated is returned through a stream's iterator when the
// connection closes before the server sent its [DONE] sentinel. It signals
// that the sequence of chunks received so far may be incomplete.
var ErrStreamTruncated = errors.New("event stream ended before the [DONE] sentinel")

// ConfigError reports a missing configuration value. Variable names the
// environment variable that was not set.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return "missing configuration: environment variable " + e.Variable + " is not set"
}

// APIError is returned when the server answers with a non-2xx status code.
// Message carries the server's error description when the body could be
// parsed, or a preview of the raw body otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// DecodeError is returned when a response body or a single stream frame
// contains JSON that does not match the expected shape. For streams the
// error is scoped to the offending frame: the caller may keep pulling and
// later well-formed frames will still decode.
type DecodeError struct {
	// Payload is a bounded preview of the bytes that failed to decode.
	Payload string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v (payload: %s)", e.Err, e.Payload)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// apiErrorBody mirrors the JSON error envelope the server uses on non-2xx
// responses.
type apiErrorBody struct {
	Error string `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response body, preferring
// the server's {"error": ...} envelope over the raw bytes.
func newAPIError(statusCode int, body []byte) *APIError {
	var envelope apiErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &APIError{StatusCode: statusCode, Message: envelope.Error}
	}
	return &APIError{StatusCode: statusCode, Message: utils.TruncateString(string(body), 0)}
}
