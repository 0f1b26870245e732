package scan

import (
	"context"
	"fmt"
	"net"
)

// resolveTarget returns the address probes should dial. Literal addresses are
// used as given; names are looked up once per scan rather than once per port,
// preferring IPv4 like the rest of the scanner.
func resolveTarget(ctx context.Context, resolver *net.Resolver, target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		return ip.String(), nil
	}

	addrs, err := resolver.LookupIPAddr(ctx, target)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("lookup failed for '%s'", target)
	}

	for _, addr := range addrs {
		if addr.IP.To4() != nil {
			return addr.IP.String(), nil
		}
	}
	return addrs[0].String(), nil
}
