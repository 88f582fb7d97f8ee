package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxSSELineSize is the maximum size of a single SSE line (1 MB).
// The default bufio.Scanner limit is 64 KiB, which is too small for
// large events such as long completion deltas. If a line exceeds this
// limit the scanner returns a wrapped bufio.ErrTooLong via Next().
const maxSSELineSize = 1 * 1024 * 1024

// DoneSentinel is the payload the server sends as the final event of a
// stream to signal normal termination.
const DoneSentinel = "[DONE]"

// SSEScanner reads Server-Sent Events from an io.Reader and frames them
// into data payloads. It joins multi-line data fields, skips comments and
// non-data fields, and recognizes the [DONE] sentinel.
//
// The scanner distinguishes two ways a stream can end: after the sentinel,
// Next returns io.EOF; if the underlying reader is exhausted before the
// sentinel was seen (whether mid-frame or between frames), Next returns
// io.ErrUnexpectedEOF so callers can surface the truncation.
type SSEScanner struct {
	scanner *bufio.Scanner
	done    bool
}

// NewSSEScanner creates an SSEScanner reading from reader. Individual SSE
// lines up to maxSSELineSize (1 MB) are supported.
func NewSSEScanner(reader io.Reader) *SSEScanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxSSELineSize)
	return &SSEScanner{scanner: scanner}
}

// Next returns the data payload of the next complete event.
//
// An event is a block of lines terminated by a blank line. Consecutive
// "data:" lines within one event are joined with newlines into a single
// payload, per the SSE specification. Comment lines (":" prefix) and the
// "event:", "id:" and "retry:" fields are ignored.
//
// Next returns io.EOF once the [DONE] sentinel has been received, and
// io.ErrUnexpectedEOF if the reader is exhausted before the sentinel.
func (s *SSEScanner) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}

	var dataLines []string

	for s.scanner.Scan() {
		line := s.scanner.Text()

		// Blank line terminates the current event frame.
		if line == "" {
			if len(dataLines) > 0 {
				return strings.Join(dataLines, "\n"), nil
			}
			continue
		}

		// SSE comment.
		if strings.HasPrefix(line, ":") {
			continue
		}

		if strings.HasPrefix(line, "data:") {
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

			if data == DoneSentinel {
				s.done = true
				return "", io.EOF
			}

			dataLines = append(dataLines, data)
			continue
		}

		// Other SSE fields (event:, id:, retry:) carry no payload here.
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading event stream: %w", err)
	}

	// Reader exhausted without the sentinel. A pending unterminated frame
	// and a clean close between frames are both truncations: the server
	// always announces completion with [DONE].
	return "", io.ErrUnexpectedEOF
}
