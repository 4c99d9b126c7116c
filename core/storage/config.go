package storage

import "time"

// DefaultTimeout applies when TimeoutSeconds is zero or negative.
const DefaultTimeout = 30 * time.Second

// Config points the publish command at an S3-compatible bucket.
type Config struct {
	// Endpoint is host:port, with or without an http(s) scheme.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`

	// Bucket receives the embedded bundle.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Prefix is prepended to every object key. The --prefix flag overrides it.
	Prefix string `mapstructure:"prefix" default:""`
	Region string `mapstructure:"region" default:""`

	// TimeoutSeconds bounds dialing, TLS handshake and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the configured transport timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
