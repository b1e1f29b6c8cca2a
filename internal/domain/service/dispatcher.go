// Package service defines domain-facing interfaces implemented by
// infrastructure adapters.
package service

import "context"

// HotsheetDeliveryEvent carries the ids this subsystem selected for one
// hotsheet delivery. Whether the downstream send succeeds is the
// dispatcher's problem, not the registry's.
type HotsheetDeliveryEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	HotsheetID string   `json:"hotsheet_id"`
	OwnerID    string   `json:"owner_id"`
	Name       string   `json:"name"`
	ListingIDs []string `json:"listing_ids"`
}

// DeliveryDispatcher defines the interface for handing selected listing ids
// to the external notification pipeline.
type DeliveryDispatcher interface {
	// DispatchHotsheet publishes a delivery event for async processing.
	DispatchHotsheet(ctx context.Context, event *HotsheetDeliveryEvent) error

	// Close releases any resources held by the dispatcher.
	Close() error
}
