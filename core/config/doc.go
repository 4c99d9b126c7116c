// Package config provides configuration management for htmx-greeter.
//
// It uses Viper for loading configuration from environment variables, with an
// optional .env file loaded first through godotenv. Variables already present
// in the environment win over the .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listening port (SERVER_PORT, or PORT)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Storage: S3/MinIO credentials and bucket for the publish command
//   - Database: optional publish manifest connection
//
// Defaults come from the `default` struct tags of each section.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	port, err := cfg.Server.ListenPort()
package config
