package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/liamg/sonar/scan"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SONAR"

var errNoProtocol = errors.New("exactly one of --tcp or --udp must be given")

// config is the merged view of flags, environment and config file. Flags set
// on the command line win over SONAR_* environment variables, which win over
// the config file.
type config struct {
	Ports      string `mapstructure:"ports"`
	TCP        bool   `mapstructure:"tcp"`
	UDP        bool   `mapstructure:"udp"`
	TimeoutMS  int    `mapstructure:"timeout-ms"`
	Workers    int    `mapstructure:"workers"`
	UDPPayload string `mapstructure:"udp-payload"`
	Sort       bool   `mapstructure:"sort"`
	Services   bool   `mapstructure:"services"`
	OpenOnly   bool   `mapstructure:"open-only"`
	Progress   bool   `mapstructure:"progress"`
	NoColor    bool   `mapstructure:"no-color"`
	Verbose    bool   `mapstructure:"verbose"`
}

func loadConfig(flags *pflag.FlagSet, configFile string) (*config, error) {
	v := viper.New()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// protocol returns the selected protocol. Exactly one of tcp and udp must be
// set; there is no default.
func (c *config) protocol() (scan.Protocol, error) {
	switch {
	case c.TCP && c.UDP:
		return 0, fmt.Errorf("%w, not both", errNoProtocol)
	case c.TCP:
		return scan.TCP, nil
	case c.UDP:
		return scan.UDP, nil
	}
	return 0, errNoProtocol
}

func (c *config) timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return scan.DefaultTimeout
	}
	return time.Millisecond * time.Duration(c.TimeoutMS)
}
