package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bundle-composer/internal/config"
	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/internal/utils"
	"github.com/MKhiriev/go-bundle-composer/models"
)

// FingerprintHeader carries the fingerprint of the delivered configuration.
const FingerprintHeader = "X-Config-Fingerprint"

const (
	runPath   = "/api/run"
	servePath = "/api/serve"
)

type httpRuntimeAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRuntimeAdapter constructs an HTTP/REST implementation of
// [RuntimeAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRuntimeAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RuntimeAdapter, error) {
	client := utils.NewHTTPClient(utils.WithUserAgent("go-bundle-composer"))
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid runtime http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRuntimeAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Run implements [RuntimeAdapter]. It POSTs cc to POST /api/run.
func (h *httpRuntimeAdapter) Run(ctx context.Context, cc models.ComposedConfiguration) error {
	return h.post(ctx, runPath, cc)
}

// Serve implements [RuntimeAdapter]. It POSTs cc to POST /api/serve.
func (h *httpRuntimeAdapter) Serve(ctx context.Context, cc models.ComposedConfiguration) error {
	return h.post(ctx, servePath, cc)
}

func (h *httpRuntimeAdapter) post(ctx context.Context, path string, cc models.ComposedConfiguration) error {
	if cc.IsZero() {
		return ErrEmptyComposed
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(FingerprintHeader, cc.Fingerprint()).
		SetBody(cc).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Info().
		Str("path", path).
		Str("profile", cc.Profile().String()).
		Str("fingerprint", cc.Fingerprint()).
		Int("status", resp.StatusCode()).
		Msg("composed configuration delivered")

	return nil
}

// Deliver hands cc to the runtime: production configurations are built once
// with Run, development configurations are served with Serve.
func Deliver(ctx context.Context, a RuntimeAdapter, cc models.ComposedConfiguration) error {
	switch cc.Profile() {
	case models.Production:
		return a.Run(ctx, cc)
	case models.Development:
		return a.Serve(ctx, cc)
	default:
		return fmt.Errorf("%w: %q", models.ErrInvalidEnvironmentProfile, cc.Profile())
	}
}
