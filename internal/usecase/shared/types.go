package shared

import (
	"time"

	"booking-engine/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// LockedReservation is a reservation read with FOR UPDATE, plus the owner of
// its resource for permission checks.
type LockedReservation struct {
	Reservation *reservation.Reservation
	OwnerID     uuid.UUID
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}

// Outbox topics, also used as broker routing keys.
const (
	TopicReservationCreated       = "reservation.created"
	TopicReservationStatusChanged = "reservation.status_changed"
)
