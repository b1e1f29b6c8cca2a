package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hotsheet/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPDispatcher implements DeliveryDispatcher by sending HTTP POST
// requests to a local worker endpoint, simulating the notification pipeline
// for development
type localHTTPDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPDispatcher creates a new local HTTP dispatcher for development
func NewLocalHTTPDispatcher(endpoint string, logger *slog.Logger) service.DeliveryDispatcher {
	return &localHTTPDispatcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// DispatchHotsheet publishes a delivery event by sending HTTP POST to the
// local endpoint
func (d *localHTTPDispatcher) DispatchHotsheet(ctx context.Context, event *service.HotsheetDeliveryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	d.logger.Info("[LocalDispatch] Publishing delivery event",
		slog.String("endpoint", d.endpoint),
		slog.String("hotsheet_id", event.HotsheetID),
		slog.Int("listing_count", len(event.ListingIDs)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	d.logger.Info("[LocalDispatch] Delivery event published",
		slog.String("hotsheet_id", event.HotsheetID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (d *localHTTPDispatcher) Close() error {
	return nil
}
