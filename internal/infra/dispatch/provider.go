// Package dispatch implements the delivery dispatcher that hands selected
// listing ids to the downstream notification pipeline.
package dispatch

import (
	"context"
	"log/slog"

	"hotsheet/config"
	"hotsheet/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported dispatch providers.
const (
	ProviderLocal = "local"
)

// noopDispatcher is a no-op implementation when dispatch is disabled
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) DispatchHotsheet(ctx context.Context, event *service.HotsheetDeliveryEvent) error {
	d.logger.Debug("[NoopDispatch] Dispatch disabled, skipping",
		slog.String("hotsheet_id", event.HotsheetID),
		slog.Int("listing_count", len(event.ListingIDs)),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for DeliveryDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryDispatcher creates a DeliveryDispatcher based on configuration
func NewDeliveryDispatcher(params DispatcherParams) (service.DeliveryDispatcher, error) {
	cfg := params.Config.Dispatch
	logger := params.Logger

	// If dispatch is not configured, return a no-op dispatcher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Dispatch not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.DeliveryDispatcher

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP dispatcher",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	default:
		return nil, errors.Errorf("unknown dispatch provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing DeliveryDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the dispatch FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeliveryDispatcher),
)
