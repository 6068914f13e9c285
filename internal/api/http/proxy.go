package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-retryablehttp"
)

// maxImageSize bounds proxied image downloads.
const maxImageSize = 5 * 1024 * 1024

// ImageProxy fetches remote exam header images server-side so the browser can
// render them without tripping cross-origin restrictions. Unlike answer-key
// fetches, image fetches retry transparently on transient failures.
type ImageProxy struct {
	client    *retryablehttp.Client
	userAgent string
}

// NewImageProxy creates a proxy with the given fetch timeout and User-Agent.
func NewImageProxy(timeout time.Duration, userAgent string) *ImageProxy {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	client.HTTPClient.Timeout = timeout

	return &ImageProxy{client: client, userAgent: userAgent}
}

// DataURI downloads the image and returns it as a base64 data URI. The media
// type comes from the response header, falling back to content sniffing when
// the upstream server omits or mislabels it.
func (p *ImageProxy) DataURI(ctx context.Context, url string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image upstream returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image body: %w", err)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", maxImageSize)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = mimetype.Detect(data).String()
	}

	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data)), nil
}
