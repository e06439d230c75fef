package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/popkit-dev/popkit/pkg/config"
	"github.com/popkit-dev/popkit/pkg/logger"
)

// Forwarder POSTs events to an HTTP collector. The POST is bounded by
// the configured timeout and every failure is swallowed after logging:
// a dead collector must never slow down or change a decision.
type Forwarder struct {
	config *config.ObservabilityConfig
	client *http.Client
	logger logger.Logger
}

// NewForwarder creates a forwarder for the given configuration.
func NewForwarder(cfg *config.ObservabilityConfig, log logger.Logger) *Forwarder {
	return &Forwarder{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.GetForwardTimeout(),
		},
		logger: log,
	}
}

// Forward POSTs one event as JSON. No-op without an endpoint.
func (f *Forwarder) Forward(event Event) {
	endpoint := f.config.GetEndpoint()
	if endpoint == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		f.logger.Error("failed to marshal event for forwarding", "error", err)

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.config.GetForwardTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		f.logger.Error("failed to build collector request", "error", err)

		return
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Debug("collector unreachable", "endpoint", endpoint, "error", err)

		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		f.logger.Debug("collector rejected event", "status", resp.StatusCode)
	}
}
