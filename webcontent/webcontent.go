package webcontent

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/predictionguard/predictionguard-go/internal/utils"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// MaxBodySize is the maximum response body size (10 MB).
	MaxBodySize = 10 * 1024 * 1024

	userAgent = "Prediction Guard Go Client webcontent"
)

// httpClient is shared by all fetches. Connection establishment is bounded
// separately from the overall per-request timeout applied via context.
var httpClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	},
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return fmt.Errorf("too many redirects (>10)")
		}
		return nil
	},
}

// Fetch retrieves the web page at rawURL and returns its content converted
// to markdown. Partial URLs ("example.com") are normalised by prepending
// "https://". The body is capped at [MaxBodySize] bytes.
func Fetch(ctx context.Context, rawURL string) (string, error) {
	html, _, err := fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(string(html))
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return markdown, nil
}

// FetchImage downloads the image at rawURL and returns it as a base64 data
// URI ("data:image/jpeg;base64,..."), ready for use in a vision chat
// message. The content type is taken from the response header when present
// and sniffed from the bytes otherwise.
func FetchImage(ctx context.Context, rawURL string) (string, error) {
	body, contentType, err := fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(body)
	}

	encoded := base64.StdEncoding.EncodeToString(body)
	return "data:" + contentType + ";base64," + encoded, nil
}

// fetch performs the shared GET with URL normalisation, timeout, size cap
// and status checking. It returns the body bytes and the response content
// type.
func fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil, "", fmt.Errorf("URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status code fetching %s: %d %s", url, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, "", fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
