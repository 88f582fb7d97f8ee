// Package utils provides shared low-level helpers used by the Prediction
// Guard client internals: a Server-Sent Events scanner for the streaming
// endpoints, string truncation for error previews, and response body cleanup.
//
// Key entry points: [SSEScanner] for framing SSE byte streams into event
// payloads, [TruncateString] for bounded error output, and [CloseWithLog]
// for closing bodies without losing close failures.
package utils
