package domain

// Status is the lifecycle state of a guest request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFollowUp  Status = "follow_up"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ValidStatusTransition reports whether a staff action may move a request
// from one status to another. The queue is staff-driven triage: pending can
// be confirmed, pending/confirmed can go to follow_up, any non-terminal
// status can complete or cancel. completed and cancelled are terminal.
func ValidStatusTransition(from, to Status) bool {
	if IsTerminal(from) {
		return false
	}
	switch to {
	case StatusConfirmed:
		return from == StatusPending
	case StatusFollowUp:
		return from == StatusPending || from == StatusConfirmed
	case StatusCompleted, StatusCancelled:
		return from == StatusPending || from == StatusConfirmed || from == StatusFollowUp
	default:
		return false
	}
}

// ValidStatus reports whether s is one of the five known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusFollowUp, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
