package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// OccupiesCapacity reports whether a reservation in this status blocks the
// calendar. Unknown statuses occupy it.
func (s Status) OccupiesCapacity() bool {
	switch s {
	case StatusCancelled:
		return false
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted:
		return true
	default:
		return true
	}
}

// CountsAsRevenue mirrors OccupiesCapacity for the ledger.
func (s Status) CountsAsRevenue() bool {
	return s.IsValid() && s != StatusCancelled
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled:
		return true
	case StatusPending, StatusConfirmed, StatusActive:
		return false
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusActive || next == StatusCancelled
	case StatusActive:
		return next == StatusCompleted
	case StatusCompleted, StatusCancelled:
		return false
	default:
		return false
	}
}
