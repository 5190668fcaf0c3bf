package queries

import "booking-engine/internal/pkg/errs"

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrInvalidQuery  = errs.New("invalid query parameters")
)
