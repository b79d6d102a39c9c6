package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels        = []string{"debug", "info", "warn", "error"}
	logFormats       = []string{"json", "text"}
	storageBackends  = []string{BackendMemory, BackendFile, BackendPostgres}
	telemetryExports = []string{"stdout", "otlp"}
)

// problems collects every validation failure so a bad config reports them
// all at once.
type problems []error

func (p *problems) add(msg string) {
	*p = append(*p, errors.New(msg))
}

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
	}
}

func (p *problems) positive(key string, ok bool) {
	if !ok {
		p.add(key + " must be positive")
	}
}

// Validate checks all configuration values and returns the joined errors.
func (c *Config) Validate() error {
	var p problems

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	p.positive("server.read_timeout", c.Server.ReadTimeout > 0)
	p.positive("server.write_timeout", c.Server.WriteTimeout > 0)

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	c.Storage.validate(&p)

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, telemetryExports)
		if c.Telemetry.Exporter == "otlp" && c.Telemetry.Endpoint == "" {
			p.add("telemetry.endpoint must not be empty when exporter is otlp")
		}
	}

	return errors.Join(p...)
}

func (st *StorageConfig) validate(p *problems) {
	p.oneOf("storage.backend", st.Backend, storageBackends)

	switch st.Backend {
	case BackendFile:
		if st.File.Dir == "" {
			p.add("storage.file.dir must not be empty when backend is file")
		}
	case BackendPostgres:
		if st.Postgres.DSN == "" {
			p.add("storage.postgres.dsn must not be empty when backend is postgres")
		}
		if st.Postgres.MaxConns < 0 {
			p.addf("storage.postgres.max_conns must be >= 0, got %d", st.Postgres.MaxConns)
		}
	}

	if strings.TrimSpace(st.Key) == "" {
		p.add("storage.key must not be empty")
	}
	p.positive("storage.timeout", st.Timeout > 0)
	if st.CircuitBreaker.MaxFailures < 1 {
		p.addf("storage.circuit_breaker.max_failures must be >= 1, got %d", st.CircuitBreaker.MaxFailures)
	}
	p.positive("storage.circuit_breaker.timeout", st.CircuitBreaker.Timeout > 0)
}
