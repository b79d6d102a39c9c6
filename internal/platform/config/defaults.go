package config

const (
	defaultServerPort = 8080

	defaultPostgresMaxConns = 4

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",
		"log.file":   "",

		"storage.backend":                         BackendMemory,
		"storage.key":                             "todos",
		"storage.timeout":                         "5s",
		"storage.file.dir":                        "data",
		"storage.postgres.dsn":                    "",
		"storage.postgres.max_conns":              defaultPostgresMaxConns,
		"storage.postgres.migrate":                true,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-core",
	}
}
