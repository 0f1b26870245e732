package scan

import (
	"context"
	"net"
	"time"
)

var defaultUDPPayload = []byte("www.google.com")

// DefaultUDPPayload returns a copy of the datagram sent by ProbeUDP.
func DefaultUDPPayload() []byte {
	payload := make([]byte, len(defaultUDPPayload))
	copy(payload, defaultUDPPayload)
	return payload
}

// ProbeUDP sends the default payload to target:port and waits for a reply.
func ProbeUDP(ctx context.Context, target string, port int, timeout time.Duration) Status {
	return probeUDP(ctx, target, port, timeout, defaultUDPPayload)
}

// NewUDPProbe returns a UDP probe that sends payload instead of the default.
// An empty payload means the default.
func NewUDPProbe(payload []byte) Probe {
	if len(payload) == 0 {
		return ProbeUDP
	}
	p := make([]byte, len(payload))
	copy(p, payload)
	return func(ctx context.Context, target string, port int, timeout time.Duration) Status {
		return probeUDP(ctx, target, port, timeout, p)
	}
}

// probeUDP classifies a port by what comes back for a single datagram. Any
// reply is Open. Silence is OpenOrFiltered: UDP has no negative
// acknowledgement for an open port that ignores the payload. An ICMP port
// unreachable surfaces on the connected socket as a refusal and is Closed.
func probeUDP(ctx context.Context, target string, port int, timeout time.Duration, payload []byte) Status {
	dialer := net.Dialer{Timeout: timeout}

	conn, err := dialer.DialContext(ctx, "udp", address(target, port))
	if err != nil {
		return classify(ctx, err, Unreachable("timeout"))
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return Unreachable(describe(err))
	}

	// unblock the read as soon as the scan is cancelled
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := conn.Write(payload); err != nil {
		return classify(ctx, err, OpenOrFiltered())
	}

	buf := make([]byte, 1024)
	if _, err := conn.Read(buf); err != nil {
		return classify(ctx, err, OpenOrFiltered())
	}
	return Open()
}
