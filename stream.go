package predictionguard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"log/slog"
	"sync"

	"github.com/predictionguard/predictionguard-go/internal/utils"
)

// Stream is a lazy, forward-only, non-restartable sequence of typed chunks
// produced from a server-sent event stream. Each pull blocks until the next
// event arrives from the network; there is no internal buffering beyond the
// current frame and no background work.
//
// The underlying connection is released when the sequence is exhausted,
// when it errors out, or when the caller breaks out of iteration early. An
// explicit [Stream.Close] is also provided so abandonment is always
// observable; it is idempotent and safe to defer alongside iteration.
//
// A Stream supports a single consumer. Concurrent pulls on the same stream
// are not supported.
type Stream[T any] struct {
	events iter.Seq2[T, error]
	close  func() error
}

// Events returns the chunk sequence for use with range-over-func loops.
//
// Example:
//
//	for event, err := range stream.Events() {
//	    if err != nil { handle error }
//	    fmt.Print(event.Choices[0].Delta.Content)
//	}
//
// A *DecodeError scoped to a single malformed frame does not terminate the
// sequence; continuing the loop resumes with the next frame. All other
// errors ([ErrStreamTruncated], connection failures, context cancellation)
// are terminal.
func (s *Stream[T]) Events() iter.Seq2[T, error] {
	return s.events
}

// Close releases the underlying connection. It is idempotent and may be
// called concurrently with, before, or after iteration.
func (s *Stream[T]) Close() error {
	return s.close()
}

// Collect consumes the remaining sequence and returns all chunks received
// before termination. On error the chunks decoded so far are returned
// alongside it; per-frame decode errors abort collection like any other
// error, since Collect has no way to ask the caller whether to continue.
func (s *Stream[T]) Collect() ([]T, error) {
	var chunks []T
	for event, err := range s.events {
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, event)
	}
	return chunks, nil
}

// newStream builds a Stream that decodes SSE frames from body into values
// of type T. The ctx is consulted between pulls so cancellation terminates
// the sequence and releases the connection.
func newStream[T any](ctx context.Context, body io.ReadCloser) *Stream[T] {
	closeBody := sync.OnceValue(func() error {
		return body.Close()
	})

	scanner := utils.NewSSEScanner(body)

	events := func(yield func(T, error) bool) {
		defer func() {
			if err := closeBody(); err != nil {
				slog.Warn("failed to close event stream body", "error", err.Error())
			}
		}()

		var zero T
		for {
			if ctx.Err() != nil {
				yield(zero, ctx.Err())
				return
			}

			payload, err := scanner.Next()
			if errors.Is(err, io.EOF) {
				// Sentinel seen; normal termination.
				return
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				yield(zero, ErrStreamTruncated)
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			var chunk T
			if decodeErr := json.Unmarshal([]byte(payload), &chunk); decodeErr != nil {
				// Scoped to this frame; the caller decides whether to
				// keep pulling.
				if !yield(zero, &DecodeError{Payload: utils.TruncateString(payload, 0), Err: decodeErr}) {
					return
				}
				continue
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}

	return &Stream[T]{events: events, close: closeBody}
}

// streamRequest opens an SSE connection for path and hands the body to a
// typed Stream.
func streamRequest[T any](ctx context.Context, c *Client, path string, body any) (*Stream[T], error) {
	resp, err := c.doPostStream(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return newStream[T](ctx, resp.Body), nil
}
