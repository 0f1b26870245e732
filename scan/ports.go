package scan

import "sort"

// DefaultPorts is every port with a registered TCP service name, in ascending
// order. It is used when no port selection is given.
var DefaultPorts []int

func init() {
	for port := range knownTCPPorts {
		DefaultPorts = append(DefaultPorts, port)
	}
	sort.Ints(DefaultPorts)
}

// DescribePort returns the IANA service name registered for port under the
// given protocol, or an empty string.
func DescribePort(protocol Protocol, port int) string {
	table := knownTCPPorts
	if protocol == UDP {
		table = knownUDPPorts
	}
	if s, ok := table[port]; ok {
		return s
	}
	return ""
}
