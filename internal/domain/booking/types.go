package booking

import "errors"

var ErrInvalidStatusTransition = errors.New("invalid booking status transition")

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// allowedTransitions is the single source of truth for the booking
// lifecycle. Cancellation is only reachable before check-in; checked_out
// and cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Source string

const (
	SourceDirect        Source = "direct"
	SourceBookingEngine Source = "booking_engine"
	SourceManual        Source = "manual"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceDirect, SourceBookingEngine, SourceManual:
		return true
	default:
		return false
	}
}
