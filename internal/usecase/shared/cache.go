package shared

import (
	"context"

	"github.com/google/uuid"
)

// SummaryInvalidator is bumped by writes that change an owner's ledger.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}
