package scan

import (
	"fmt"
	"sort"
)

// Result is the outcome of probing one port. It is created once per port per
// scan and never modified afterwards.
type Result struct {
	Port   int
	Status Status
}

func (r Result) IsOpen() bool {
	return r.Status.State == PortOpen
}

func (r Result) String() string {
	return fmt.Sprintf("Port: %d is %s", r.Port, r.Status.Description())
}

// SortResults orders results by port number in place. Scans report results in
// completion order, so callers wanting port order sort after the scan returns.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Port < results[j].Port
	})
}
