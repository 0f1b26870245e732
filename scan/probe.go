package scan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// DefaultTimeout bounds every probe unless the scanner is told otherwise.
const DefaultTimeout = time.Second

// Probe tests a single (target, port) pair and classifies it. A probe never
// returns an error: every network fault is folded into the returned Status.
type Probe func(ctx context.Context, target string, port int, timeout time.Duration) Status

// ProbeFor returns the default probe for the given protocol, or nil if the
// protocol is unknown.
func ProbeFor(protocol Protocol) Probe {
	switch protocol {
	case TCP:
		return ProbeTCP
	case UDP:
		return ProbeUDP
	}
	return nil
}

func address(target string, port int) string {
	return net.JoinHostPort(target, strconv.Itoa(port))
}

// classify maps a socket error onto a Status. What a timeout means differs per
// protocol, so the caller supplies it.
func classify(ctx context.Context, err error, onTimeout Status) Status {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return onTimeout
		}
		return Unreachable("cancelled")
	}
	if isRefused(err) {
		return Closed()
	}
	if isTimeout(err) {
		return onTimeout
	}
	return Unreachable(describe(err))
}

func isRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	return strings.Contains(err.Error(), "refused")
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// describe strips the "dial tcp host:port:" prefix that net adds, since the
// port is already part of the result.
func describe(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Error()
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Err.Error()
	}
	return err.Error()
}
