package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/deppfellow/customer-api/internal/config"
	"github.com/deppfellow/customer-api/internal/errs"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// maxProbeBody caps how much of the upstream response is read.
const maxProbeBody = 10 << 20

// ProbeService checks outbound connectivity by fetching a fixed JSON document.
type ProbeService struct {
	client *http.Client
	url    string
}

// NewProbeService builds the probe. A nil client gets one with the configured
// timeout whose requests show up as New Relic external segments.
func NewProbeService(cfg config.ProbeConfig, client *http.Client) (*ProbeService, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("probe url is required")
	}

	if client == nil {
		client = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newrelic.NewRoundTripper(http.DefaultTransport),
		}
	}

	return &ProbeService{client: client, url: cfg.URL}, nil
}

// Fetch returns the upstream body unchanged. Transport failures and bodies
// that are not JSON are errs.ErrUpstream. The upstream status is not checked.
func (s *ProbeService) Fetch(ctx context.Context) (json.RawMessage, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", errs.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", errs.ErrUpstream, s.url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", errs.ErrUpstream, s.url, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned a non-JSON body (status %d)", errs.ErrUpstream, s.url, resp.StatusCode)
	}

	logger.Debug().
		Str("url", s.url).
		Int("upstream_status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("probe fetched")

	return body, nil
}
