package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"belrates/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
)

const defaultTimeout = 10 * time.Second

// maxBodySize bounds a single rate record; real responses are a few hundred bytes.
const maxBodySize = 64 << 10

type Client struct {
	http *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{http: httpClient}
}

// Fetch performs a GET and returns the body as UTF-8 text.
// 404 is reported as domain.ErrNotFound, every other failure as *domain.TransportError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logrus.WithError(closeErr).WithField("url", url).Warn("Failed to close response body")
		}
	}()

	logrus.WithFields(logrus.Fields{"url": url, "status": resp.StatusCode}).Debug("Provider responded")

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	reader, err := utf8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &domain.TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	body, err := io.ReadAll(io.LimitReader(reader, maxBodySize+1))
	if err != nil {
		return nil, &domain.TransportError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	if len(body) > maxBodySize {
		return nil, &domain.TransportError{URL: url, StatusCode: resp.StatusCode, Err: errors.New("response body too large")}
	}
	return body, nil
}

// utf8Reader transcodes r when the content type names a non UTF-8 charset.
func utf8Reader(r io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return r, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r, nil
	}
	charset := strings.ToLower(strings.TrimSpace(params["charset"]))
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(r), nil
}
