package server

import "strconv"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port the HTTP server listens on.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the API key required for protected endpoints. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// ScanIntervalSeconds is how often the server rescans every site. Zero disables periodic scans.
	ScanIntervalSeconds int `mapstructure:"scan_interval_seconds" default:"60"`
}

// IsValidPort checks if the configured port is a usable TCP port number.
func (c Config) IsValidPort() bool {
	n, err := strconv.Atoi(c.Port)
	return err == nil && n > 0 && n < 65536
}
