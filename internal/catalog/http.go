package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// HTTPSource fetches the catalog document from a URL. Transient upstream
// failures are retried with backoff before giving up.
type HTTPSource struct {
	URL    string
	client *retryablehttp.Client
}

var _ Source = (*HTTPSource)(nil)

func NewHTTPSource(url string) *HTTPSource {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	return &HTTPSource{URL: url, client: client}
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func (s *HTTPSource) Name() string { return s.URL }
