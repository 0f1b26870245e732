package scan

import (
	"context"
	"net"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Timeout bounds each probe individually. There is no scan-wide deadline
	// other than the one carried by the context. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Workers caps the number of probes in flight. Zero or less means one
	// goroutine per port, all started before any is awaited.
	Workers int
	// UDPPayload replaces the datagram sent by UDP probes.
	UDPPayload []byte
}

// Scanner fans a Request out into one probe per port and collects exactly one
// Result per port. A Scanner holds no per-scan state and may run scans
// concurrently.
type Scanner struct {
	timeout  time.Duration
	workers  int
	probes   map[Protocol]Probe
	resolver *net.Resolver
}

func NewScanner(opts Options) *Scanner {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scanner{
		timeout: timeout,
		workers: opts.Workers,
		probes: map[Protocol]Probe{
			TCP: ProbeTCP,
			UDP: NewUDPProbe(opts.UDPPayload),
		},
		resolver: net.DefaultResolver,
	}
}

func (s *Scanner) Timeout() time.Duration {
	return s.timeout
}

// Run performs the scan and returns once every probe has finished. Results are
// in completion order; see SortResults.
func (s *Scanner) Run(ctx context.Context, req Request) ([]Result, error) {
	stream, err := s.Stream(ctx, req)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(req.Ports))
	for result := range stream {
		results = append(results, result)
	}
	return results, nil
}

// Stream validates req and starts the scan, delivering each Result as its
// probe completes. The channel is closed after the last probe has finished.
// Configuration errors are returned before any probe is started.
func (s *Scanner) Stream(ctx context.Context, req Request) (<-chan Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ports := make([]int, len(req.Ports))
	copy(ports, req.Ports)

	// buffered so a probe never waits on a slow consumer
	resultChan := make(chan Result, len(ports))

	if len(ports) == 0 {
		close(resultChan)
		return resultChan, nil
	}

	logger := log.WithFields(log.Fields{
		"scan_id":  uuid.NewString(),
		"target":   req.Target,
		"protocol": req.Protocol.String(),
		"ports":    len(ports),
	})

	host, err := resolveTarget(ctx, s.resolver, req.Target)
	if err != nil {
		logger.WithError(err).Debugf("Failed to resolve target")
		status := Unreachable(describe(err))
		for _, port := range ports {
			resultChan <- Result{Port: port, Status: status}
		}
		close(resultChan)
		return resultChan, nil
	}

	probe := s.probes[req.Protocol]

	if len(ports) == 1 {
		resultChan <- s.probePort(ctx, logger, probe, host, ports[0])
		close(resultChan)
		return resultChan, nil
	}

	logger.Debugf("Starting scan of %s...", host)
	startTime := time.Now()

	group := &errgroup.Group{}
	if s.workers > 0 {
		group.SetLimit(s.workers)
	}

	go func() {
		for _, port := range ports {
			port := port
			group.Go(func() error {
				resultChan <- s.probePort(ctx, logger, probe, host, port)
				return nil
			})
		}
		_ = group.Wait()
		close(resultChan)
		logger.Debugf("Scan complete in %s", time.Since(startTime))
	}()

	return resultChan, nil
}

func (s *Scanner) probePort(ctx context.Context, logger *log.Entry, probe Probe, host string, port int) Result {
	status := probe(ctx, host, port, s.timeout)
	logger.WithField("port", port).Debugf("Port is %s", status.Description())
	return Result{Port: port, Status: status}
}
