package scan

import (
	"errors"
	"fmt"
)

const (
	MinPort = 1
	MaxPort = 65535
)

var (
	ErrNoTarget        = errors.New("no target specified")
	ErrPortOutOfRange  = errors.New("port out of range")
	ErrUnknownProtocol = errors.New("unknown protocol")
)

// Request describes a single scan: one target, one protocol, an ordered list
// of ports. It is read-only once handed to a Scanner.
type Request struct {
	Target   string
	Protocol Protocol
	Ports    []int
}

// Validate checks the request for configuration errors. An empty port list is
// valid and results in a scan that does nothing.
func (r Request) Validate() error {
	if r.Target == "" {
		return ErrNoTarget
	}
	if r.Protocol != TCP && r.Protocol != UDP {
		return fmt.Errorf("%w: %s", ErrUnknownProtocol, r.Protocol)
	}
	for _, port := range r.Ports {
		if port < MinPort || port > MaxPort {
			return fmt.Errorf("%w: %d", ErrPortOutOfRange, port)
		}
	}
	return nil
}
