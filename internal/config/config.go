package config

import (
	"os"
	"strings"
)

// Config is the per-service runtime configuration. State never persists,
// so this covers the whole environment surface: a listen port and a
// development toggle.
type Config struct {
	Service     string
	Port        string
	Development bool
}

// Load reads the service port from portVar (falling back to defaultPort)
// and the DEVELOPMENT flag shared by both services.
func Load(service, portVar, defaultPort string) Config {
	return Config{
		Service:     service,
		Port:        getenv(portVar, defaultPort),
		Development: isTruthy(os.Getenv("DEVELOPMENT")),
	}
}

func (c Config) Addr() string { return ":" + c.Port }

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
