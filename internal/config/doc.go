// Package config loads the watchlist converter configuration.
//
// # Configuration Sources
//
// Values are resolved in the following order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (-config flag or WATCHLIST_CONFIG)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables use the WATCHLIST_ prefix:
//
//	WATCHLIST_LOGGING_LEVEL=debug
//	WATCHLIST_LOGGING_OUTPUT=both
//	WATCHLIST_EXPORT_LINE_TERMINATOR=lf
//	WATCHLIST_EXPORT_BOM_PREFIX=true
//	WATCHLIST_TELEMETRY_TRACING=true
//	WATCHLIST_TELEMETRY_METRICS_TEXTFILE=/var/lib/node_exporter/watchlist.prom
//
// # Configuration File
//
//	logging:
//	  level: info
//	  output: stderr
//	export:
//	  format: auto
//	  line_terminator: crlf
//	telemetry:
//	  tracing: false
//
// # Paths
//
// ExpandPath resolves a leading "~" to the user's home directory so that
// input and output arguments behave the same as in a shell.
package config
