package usecase

import "context"

// RecipientUsecase sizes the notification audience for a filter's geography.
type RecipientUsecase interface {
	// EstimateRecipients returns an approximate count of parties whose
	// declared coverage area intersects the filter's geography. This is a
	// targeting estimate, not a guaranteed delivery count.
	EstimateRecipients(ctx context.Context, filter map[string]any) (int64, error)
}
