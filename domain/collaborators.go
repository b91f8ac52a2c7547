package domain

import "context"

// AssetReleaser frees externally stored binary assets (avatars, covers,
// thumbnails, post media) by their public ID. Releasing an unknown ID is
// not an error; the cascade coordinator calls this fire-and-forget.
type AssetReleaser interface {
	Release(ctx context.Context, publicID string) error
}

// Mailer sends outbound account notifications. Delivery internals are an
// external collaborator's concern.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// CounterReconciler periodically recomputes denormalized counters from the
// edge tables to repair drift.
type CounterReconciler interface {
	Start(ctx context.Context)

	// Trigger requests an immediate reconciliation pass. Concurrent
	// triggers collapse into one pass.
	Trigger()
}
