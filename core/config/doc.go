// Package config provides configuration management for msforge.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section and are registered by reflection, so every key is also reachable
// through its environment variable (diff.precision -> DIFF_PRECISION).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//   - Database: report database driver and connection details
//   - Diff: comparison precision and ignore flags
//   - Threshold: default thresholding policy, orientation and value
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Diff.Precision)
package config
