package server

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReportTimeoutSeconds bounds how long a report request may take.
	ReportTimeoutSeconds int `mapstructure:"report_timeout_seconds" default:"120"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ReportTimeout returns the report timeout, falling back to two minutes.
func (c Config) ReportTimeout() time.Duration {
	if c.ReportTimeoutSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.ReportTimeoutSeconds) * time.Second
}

// Validate checks that the port is a usable TCP port.
func (c Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}
