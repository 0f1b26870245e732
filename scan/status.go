package scan

import "fmt"

type PortState uint8

const (
	PortUnknown PortState = iota
	PortOpen
	PortClosed
	PortOpenFiltered
	PortUnreachable
)

func (s PortState) String() string {
	switch s {
	case PortOpen:
		return "open"
	case PortClosed:
		return "closed"
	case PortOpenFiltered:
		return "open | filtered"
	case PortUnreachable:
		return "unreachable"
	}
	return "unknown"
}

// Status is the classification of a single probe. Reason is only set for
// PortUnreachable.
type Status struct {
	State  PortState
	Reason string
}

func Open() Status {
	return Status{State: PortOpen}
}

func Closed() Status {
	return Status{State: PortClosed}
}

func OpenOrFiltered() Status {
	return Status{State: PortOpenFiltered}
}

func Unreachable(reason string) Status {
	return Status{State: PortUnreachable, Reason: reason}
}

// Description renders the status the way results are reported to users.
func (s Status) Description() string {
	if s.State == PortUnreachable {
		return fmt.Sprintf("closed or unreachable: %s", s.Reason)
	}
	return s.State.String()
}

func (s Status) String() string {
	return s.Description()
}
