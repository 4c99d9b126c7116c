package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// DefaultPort is used when no port is configured.
const DefaultPort uint16 = 8080

// ErrInvalidPort is returned when the configured port is not a uint16.
var ErrInvalidPort = errors.New("invalid port")

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// ListenPort parses Port. An empty value means DefaultPort.
func (c Config) ListenPort() (uint16, error) {
	if c.Port == "" {
		return DefaultPort, nil
	}

	p, err := strconv.ParseUint(c.Port, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q: must be an integer between 0 and 65535", ErrInvalidPort, c.Port)
	}
	return uint16(p), nil
}

// ListenAddr returns the address to bind: every IPv4 interface on the port.
func (c Config) ListenAddr() (string, error) {
	p, err := c.ListenPort()
	if err != nil {
		return "", err
	}
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(int(p))), nil
}
