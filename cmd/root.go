package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/liamg/sonar/scan"
	"github.com/liamg/sonar/version"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var configFile string
var versionRequested bool

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", configFile, "Config file (yaml, toml or json)")
	flags.BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")

	addScanFlags(flags)

	rootCmd.MarkFlagsMutuallyExclusive("tcp", "udp")
}

var rootCmd = &cobra.Command{
	Use:   "sonar [flags] <target>",
	Short: "Sonar is a TCP/UDP port scanner",
	Long:  `A port scanner which probes every requested port of a single host concurrently.`,
	Example: `  sonar --tcp -p 80 192.168.0.1
  sonar --udp -p 53 --udp-payload dns 192.168.0.1
  sonar --tcp -p 22,80,8000-8010 --sort example.com`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sonar %s\n", v)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("Please specify a target")
		}

		cfg, err := loadConfig(cmd.Flags(), configFile)
		if err != nil {
			return err
		}

		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		req, opts, err := buildRequest(cfg, args[0], cmd.Flags().Changed("ports"))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := &printer{
			w:        cmd.OutOrStdout(),
			protocol: req.Protocol,
			services: cfg.Services,
			openOnly: cfg.OpenOnly,
			colour:   !cfg.NoColor,
		}

		var bar *progressbar.ProgressBar
		if cfg.Progress {
			bar = newProgressBar(cmd.ErrOrStderr(), len(req.Ports))
		}

		return runScan(ctx, scan.NewScanner(opts), req, out, bar, cfg.Sort)
	},
}

func addScanFlags(flags *pflag.FlagSet) {
	flags.StringP("ports", "p", "", "Ports to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090")
	flags.Bool("tcp", false, "Scan using TCP connect probes")
	flags.Bool("udp", false, "Scan using UDP datagram probes")
	flags.IntP("timeout-ms", "t", int(scan.DefaultTimeout/time.Millisecond), "Per-probe timeout in MS")
	flags.IntP("workers", "w", 1000, "Maximum probes in flight, 0 for one per port")
	flags.String("udp-payload", "raw", "UDP probe payload. Must be one of raw, dns")
	flags.BoolP("sort", "o", false, "Sort output by port instead of completion order")
	flags.BoolP("services", "n", false, "Annotate ports with their registered service name")
	flags.Bool("open-only", false, "Only output open ports")
	flags.Bool("progress", false, "Show a progress bar on stderr")
	flags.Bool("no-color", false, "Disable coloured output")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildRequest turns the merged configuration into a scan request. Every
// configuration error is reported here, before anything touches the network.
func buildRequest(cfg *config, target string, portsGiven bool) (scan.Request, scan.Options, error) {
	var req scan.Request
	var opts scan.Options

	protocol, err := cfg.protocol()
	if err != nil {
		return req, opts, err
	}

	ports := scan.DefaultPorts
	if portsGiven || cfg.Ports != "" {
		ports, err = getPorts(cfg.Ports)
		if err != nil {
			return req, opts, err
		}
	}

	payload, err := scan.UDPPayload(cfg.UDPPayload)
	if err != nil {
		return req, opts, err
	}

	req = scan.Request{
		Target:   target,
		Protocol: protocol,
		Ports:    ports,
	}
	if err := req.Validate(); err != nil {
		return req, opts, err
	}

	opts = scan.Options{
		Timeout:    cfg.timeout(),
		Workers:    cfg.Workers,
		UDPPayload: payload,
	}
	return req, opts, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("scanning"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func runScan(ctx context.Context, scanner *scan.Scanner, req scan.Request, out *printer, bar *progressbar.ProgressBar, sorted bool) error {

	log.Debugf("Scanning %d %s ports on %s...", len(req.Ports), req.Protocol, req.Target)
	startTime := time.Now()

	stream, err := scanner.Stream(ctx, req)
	if err != nil {
		return err
	}

	var results []scan.Result
	for result := range stream {
		if bar != nil {
			_ = bar.Add(1)
		}
		if sorted {
			results = append(results, result)
			continue
		}
		out.print(result)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if sorted {
		scan.SortResults(results)
		for _, result := range results {
			out.print(result)
		}
	}

	log.Debugf("Scan complete in %s.", time.Since(startTime).String())
	return nil
}
