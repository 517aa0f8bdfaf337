// Package config provides configuration management for the collector stats service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Source: upstream row-store gateway (base URL, timeouts, retries)
//   - Database: cache database connection (SQLite or MySQL)
//   - Archive: S3/MinIO credentials for leaderboard snapshots
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
