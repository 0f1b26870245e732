package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/liamg/sonar/scan"
)

// getPorts parses a selection such as "22,80,8000-8010" into a sorted list of
// distinct ports.
func getPorts(selection string) ([]int, error) {
	seen := map[int]struct{}{}
	ranges := strings.Split(selection, ",")
	for _, r := range ranges {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, fmt.Errorf("Invalid port selection: '%s'", selection)
		}
		if strings.Contains(r, "-") {
			parts := strings.Split(r, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("Invalid port selection segment: '%s'", r)
			}

			p1, err := parsePort(parts[0])
			if err != nil {
				return nil, err
			}

			p2, err := parsePort(parts[1])
			if err != nil {
				return nil, err
			}

			if p1 > p2 {
				return nil, fmt.Errorf("Invalid port range: %d-%d", p1, p2)
			}

			for i := p1; i <= p2; i++ {
				seen[i] = struct{}{}
			}

		} else {
			port, err := parsePort(r)
			if err != nil {
				return nil, err
			}
			seen[port] = struct{}{}
		}
	}

	ports := make([]int, 0, len(seen))
	for port := range seen {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports, nil
}

func parsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("Invalid port number: '%s'", s)
	}
	if port < scan.MinPort || port > scan.MaxPort {
		return 0, fmt.Errorf("Port out of range (%d-%d): %d", scan.MinPort, scan.MaxPort, port)
	}
	return port, nil
}
