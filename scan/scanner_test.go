package scan

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScanner(opts Options, probe Probe) *Scanner {
	s := NewScanner(opts)
	s.probes[TCP] = probe
	s.probes[UDP] = probe
	return s
}

func countingProbe(count *int32, status Status) Probe {
	return func(ctx context.Context, target string, port int, timeout time.Duration) Status {
		atomic.AddInt32(count, 1)
		return status
	}
}

func statesByPort(results []Result) map[int]PortState {
	states := map[int]PortState{}
	for _, result := range results {
		states[result.Port] = result.Status.State
	}
	return states
}

func TestScanOneResultPerPort(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Closed()))

	ports := []int{}
	for port := 1; port <= 200; port++ {
		ports = append(ports, port)
	}

	results, err := s.Run(context.Background(), Request{Target: "127.0.0.1", Protocol: TCP, Ports: ports})
	require.NoError(t, err)

	assert.Len(t, results, len(ports))
	assert.Equal(t, int32(len(ports)), atomic.LoadInt32(&count))

	seen := map[int]bool{}
	for _, result := range results {
		assert.False(t, seen[result.Port], "duplicate result for port %d", result.Port)
		seen[result.Port] = true
	}
	for _, port := range ports {
		assert.True(t, seen[port], "missing result for port %d", port)
	}
}

func TestScanEmptyPortSet(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Open()))

	// an unresolvable target proves no lookup happens either
	results, err := s.Run(context.Background(), Request{Target: "no-such-host.invalid", Protocol: UDP})
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Equal(t, int32(0), atomic.LoadInt32(&count))
}

func TestScanSinglePort(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Open()))

	results, err := s.Run(context.Background(), Request{Target: "127.0.0.1", Protocol: TCP, Ports: []int{443}})
	require.NoError(t, err)

	assert.Equal(t, []Result{{Port: 443, Status: Open()}}, results)
	assert.Equal(t, int32(1), atomic.LoadInt32(&count))
}

func TestScanInvalidRequestStartsNothing(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Open()))

	_, err := s.Run(context.Background(), Request{Target: "127.0.0.1", Protocol: TCP, Ports: []int{22, 70000}})
	assert.ErrorIs(t, err, ErrPortOutOfRange)

	_, err = s.Run(context.Background(), Request{Protocol: TCP, Ports: []int{22}})
	assert.ErrorIs(t, err, ErrNoTarget)

	_, err = s.Stream(context.Background(), Request{Target: "127.0.0.1", Ports: []int{22}})
	assert.ErrorIs(t, err, ErrUnknownProtocol)

	assert.Equal(t, int32(0), atomic.LoadInt32(&count))
}

func TestScanUnresolvableTarget(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Open()))

	results, err := s.Run(context.Background(), Request{Target: "no-such-host.invalid", Protocol: TCP, Ports: []int{22, 80, 443}})
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, PortUnreachable, result.Status.State)
		assert.NotEmpty(t, result.Status.Reason)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&count))
}

func TestScanIsConcurrent(t *testing.T) {
	delay := 200 * time.Millisecond
	s := newTestScanner(Options{}, func(ctx context.Context, target string, port int, timeout time.Duration) Status {
		time.Sleep(delay)
		return OpenOrFiltered()
	})

	ports := []int{}
	for port := 1000; port < 1050; port++ {
		ports = append(ports, port)
	}

	start := time.Now()
	results, err := s.Run(context.Background(), Request{Target: "127.0.0.1", Protocol: UDP, Ports: ports})
	elapsed := time.Since(start)
	require.NoError(t, err)

	assert.Len(t, results, len(ports))
	assert.Less(t, elapsed, 3*delay)
}

func TestScanWorkerLimit(t *testing.T) {
	var inFlight, maxInFlight int32
	s := newTestScanner(Options{Workers: 3}, func(ctx context.Context, target string, port int, timeout time.Duration) Status {
		current := atomic.AddInt32(&inFlight, 1)
		for {
			prev := atomic.LoadInt32(&maxInFlight)
			if current <= prev || atomic.CompareAndSwapInt32(&maxInFlight, prev, current) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		return Closed()
	})

	ports := []int{}
	for port := 1; port <= 12; port++ {
		ports = append(ports, port)
	}

	results, err := s.Run(context.Background(), Request{Target: "127.0.0.1", Protocol: TCP, Ports: ports})
	require.NoError(t, err)

	assert.Len(t, results, len(ports))
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(3))
}

func TestScanCancelled(t *testing.T) {
	s := newTestScanner(Options{}, func(ctx context.Context, target string, port int, timeout time.Duration) Status {
		select {
		case <-ctx.Done():
			return Unreachable("cancelled")
		case <-time.After(5 * time.Second):
			return OpenOrFiltered()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	results, err := s.Run(ctx, Request{Target: "127.0.0.1", Protocol: UDP, Ports: []int{53, 123, 161}})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, Unreachable("cancelled"), result.Status)
	}
}

func TestScanStreamDeliversEveryResult(t *testing.T) {
	var count int32
	s := newTestScanner(Options{}, countingProbe(&count, Open()))

	stream, err := s.Stream(context.Background(), Request{Target: "127.0.0.1", Protocol: TCP, Ports: []int{1, 2, 3, 4}})
	require.NoError(t, err)

	var ports []int
	for result := range stream {
		ports = append(ports, result.Port)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ports)
}

func TestScanTCPLoopback(t *testing.T) {
	closed, err := freeport.GetFreePorts(2)
	require.NoError(t, err)
	open := listenTCP(t)

	s := NewScanner(Options{})
	results, err := s.Run(context.Background(), Request{
		Target:   "127.0.0.1",
		Protocol: TCP,
		Ports:    []int{closed[0], closed[1], open},
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]PortState{
		closed[0]: PortClosed,
		closed[1]: PortClosed,
		open:      PortOpen,
	}, statesByPort(results))
}

func TestScanUDPLoopback(t *testing.T) {
	open := listenUDP(t, true, nil)
	silent := listenUDP(t, false, nil)

	s := NewScanner(Options{Timeout: 200 * time.Millisecond})
	results, err := s.Run(context.Background(), Request{
		Target:   "localhost",
		Protocol: UDP,
		Ports:    []int{open, silent},
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]PortState{
		open:   PortOpen,
		silent: PortOpenFiltered,
	}, statesByPort(results))
}

func TestNewScannerDefaults(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewScanner(Options{}).Timeout())
	assert.Equal(t, 250*time.Millisecond, NewScanner(Options{Timeout: 250 * time.Millisecond}).Timeout())
}
