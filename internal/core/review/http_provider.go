package review

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// HTTPProvider fetches pages from a remote endpoint that accepts offset and
// limit query parameters and answers with a Page payload.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider creates a provider for endpoint. A zero timeout leaves the
// transport default in place.
func NewHTTPProvider(endpoint string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Page performs a single GET for the requested window.
func (p *HTTPProvider) Page(ctx context.Context, offset, limit int) (Page, error) {
	u, err := url.Parse(p.endpoint)
	if err != nil {
		return Page{}, fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("request reviews: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Debug().Err(err).Msg("reviews: close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("request reviews: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("read reviews body: %w", err)
	}

	return DecodePage(body)
}
