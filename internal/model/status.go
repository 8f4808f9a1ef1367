package model

import "fmt"

// Status is the moderation state of a job.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusApproved
	StatusSpam
)

// Accent is the indicator colour a status is shown with.
type Accent string

const (
	AccentNone   Accent = ""
	AccentGreen  Accent = "green"
	AccentRed    Accent = "red"
	AccentYellow Accent = "yellow"
)

// Classify maps the status triple to a single status. Any combination other
// than exactly one flag set is StatusUnknown.
func Classify(isPending, isApproved, isSpam bool) Status {
	switch {
	case !isPending && isApproved && !isSpam:
		return StatusApproved
	case !isPending && isSpam && !isApproved:
		return StatusSpam
	case isPending && !isSpam && !isApproved:
		return StatusPending
	default:
		return StatusUnknown
	}
}

// Label is the display text of the status; empty for StatusUnknown.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "Approved"
	case StatusSpam:
		return "Spam"
	case StatusPending:
		return "Pending"
	default:
		return ""
	}
}

func (s Status) Accent() Accent {
	switch s {
	case StatusApproved:
		return AccentGreen
	case StatusSpam:
		return AccentRed
	case StatusPending:
		return AccentYellow
	default:
		return AccentNone
	}
}

func (s Status) String() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusSpam:
		return "spam"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for _, st := range []Status{StatusUnknown, StatusPending, StatusApproved, StatusSpam} {
		if st.String() == s {
			return st, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown status %q", s)
}
