package broker

import "booking-engine/internal/usecase/shared"

var Topics = []string{
	shared.TopicReservationCreated,
	shared.TopicReservationStatusChanged,
}
