package config

import "maps"

// defaults is the lowest layer. Every key the service reads has a value here,
// so base.yaml only needs to state what a deployment commonly changes.
func defaults() map[string]any {
	server := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          8080,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
	}

	// The session client sits on the request path of every authenticated
	// call, so its budget stays well inside server.write_timeout.
	client := map[string]any{
		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "5s",
		"client.retry.max_attempts":              3,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                2.0,
		"client.circuit_breaker.max_failures":    5,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": 1,
		"client.rate_limit.requests_per_second":  0.0,
		"client.rate_limit.burst_size":           10,
	}

	board := map[string]any{
		"database.path":              "noteboard.db",
		"database.busy_timeout":      "5s",
		"auth.provider":              AuthProviderHeader,
		"auth.header":                "X-User-Id",
		"auth.session_path":          "/api/v1/session",
		"board.column_delete_policy": "cascade",
	}

	out := map[string]any{
		"log.level":              "info",
		"log.format":             "json",
		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "noteboard",
	}
	for _, m := range []map[string]any{server, client, board} {
		maps.Copy(out, m)
	}
	return out
}
