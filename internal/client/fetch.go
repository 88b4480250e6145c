package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/failsafe-go/failsafe-go"

	"github.com/Belphemur/ShowCatalog/internal/apperrors"
	"github.com/Belphemur/ShowCatalog/internal/config"
	"github.com/Belphemur/ShowCatalog/internal/metrics"
	"github.com/Belphemur/ShowCatalog/internal/parser"
)

// Endpoint labels used in logs and metrics.
const (
	endpointSearch   = "search"
	endpointEpisodes = "episodes"
)

// payload is a fully read response body together with its Content-Type.
type payload struct {
	body        []byte
	contentType string
}

// fetchJSON GETs path (relative to the catalog base URL) and decodes the JSON body into out.
// Transport failures become ErrNetworkFailure, non-2xx answers ErrUpstream and
// undecodable bodies ErrShapeMismatch. Nothing is retried.
func (c *client) fetchJSON(ctx context.Context, endpoint, path string, query url.Values, out any) (err error) {
	logger := config.GetLogger()

	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	start := time.Now()
	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.CatalogRequestsTotal.WithLabelValues(endpoint, outcomeOf(err)).Inc()
	}()

	logger.Debug().Str("endpoint", endpoint).Str("url", reqURL).Msg("Requesting catalog")

	p, err := c.fetch(ctx, path, reqURL)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("endpoint", endpoint).
		Str("contentType", p.contentType).
		Int("size", len(p.body)).
		Msg("Catalog responded")

	reader, err := parser.NewUTF8Reader(bytes.NewReader(p.body), p.contentType)
	if err != nil {
		return apperrors.NewShapeMismatch(path, "detect body encoding", err)
	}
	if err := json.NewDecoder(reader).Decode(out); err != nil {
		return apperrors.NewShapeMismatch(path, "decode body", err)
	}
	return nil
}

// fetch runs the request under the timeout policy, when one is configured.
func (c *client) fetch(ctx context.Context, path, reqURL string) (*payload, error) {
	if c.executor == nil {
		return c.doRequest(ctx, path, reqURL)
	}

	p, err := c.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[*payload]) (*payload, error) {
		return c.doRequest(exec.Context(), path, reqURL)
	})
	if err != nil {
		var upstream *apperrors.ErrUpstream
		var network *apperrors.ErrNetworkFailure
		if errors.As(err, &upstream) || errors.As(err, &network) {
			return nil, err
		}
		// Timeout exceeded or context ended before the request started
		return nil, apperrors.NewNetworkFailure(path, err)
	}
	return p, nil
}

// doRequest performs an HTTP GET and returns the response body bytes.
func (c *client) doRequest(ctx context.Context, path, reqURL string) (*payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewNetworkFailure(path, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkFailure(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, apperrors.NewUpstreamError(path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkFailure(path, fmt.Errorf("read body: %w", err))
	}
	return &payload{body: body, contentType: resp.Header.Get("Content-Type")}, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, &apperrors.ErrUpstream{}):
		return metrics.OutcomeUpstreamError
	case errors.Is(err, &apperrors.ErrShapeMismatch{}):
		return metrics.OutcomeShapeMismatch
	default:
		return metrics.OutcomeNetworkError
	}
}
