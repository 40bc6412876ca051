package expense

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an expense.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusCompleted Status = "COMPLETED"
	StatusRejected  Status = "REJECTED"
)

// Transition is a single allowed edge in the expense lifecycle.
type Transition struct {
	From           Status
	To             Status
	RequiresReason bool
}

var transitions = []Transition{
	{From: StatusPending, To: StatusApproved},
	{From: StatusApproved, To: StatusCompleted},
	{From: StatusPending, To: StatusRejected, RequiresReason: true},
}

// ParseStatus validates a raw status string against the closed enumeration.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return s, nil
	}
	return "", fmt.Errorf("unknown expense status %q", raw)
}

// IsTerminal reports whether no further transition leaves the given state.
func (s Status) IsTerminal() bool {
	for _, tr := range transitions {
		if tr.From == s {
			return false
		}
	}
	return true
}

// CheckTransition decides whether an expense currently in `from` may move to
// `to` with the supplied rejection reason. The reason is only consulted on
// edges that require one, and is compared after trimming whitespace.
func CheckTransition(from, to Status, reason string) error {
	for _, tr := range transitions {
		if tr.From != from || tr.To != to {
			continue
		}
		if tr.RequiresReason && strings.TrimSpace(reason) == "" {
			return fmt.Errorf("a reason is required to move an expense to %s", to)
		}
		return nil
	}
	if from == to {
		return fmt.Errorf("expense is already %s", from)
	}
	return fmt.Errorf("cannot move an expense from %s to %s", from, to)
}
