package scan

import (
	"context"
	"net"
	"time"
)

// ProbeTCP performs a full TCP connect to target:port. A completed handshake
// is Open, a refusal or reset is Closed, and anything else (including a
// timeout, which usually means packets are being dropped) is Unreachable.
func ProbeTCP(ctx context.Context, target string, port int, timeout time.Duration) Status {
	dialer := net.Dialer{
		Timeout:   timeout,
		KeepAlive: -1,
	}

	conn, err := dialer.DialContext(ctx, "tcp", address(target, port))
	if err != nil {
		return classify(ctx, err, Unreachable("timeout"))
	}
	_ = conn.Close()
	return Open()
}
