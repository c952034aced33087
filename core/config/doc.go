// Package config provides configuration management for spoolq.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file overlaid first.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Spool: spool root, site names and backend (local or storage)
//   - Server: HTTP server settings (port, API key, scan interval)
//   - Storage: S3/MinIO credentials, bucket and key prefix
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Spool.Root)
package config
