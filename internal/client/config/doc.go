// Package config loads runtime configuration for the goaltracker client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API, e.g. http://localhost:5000/api
//	-t int      request timeout (seconds)
//	-d string   path of the SQLite session database
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text, json, zap
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds. Absent keys keep earlier values:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "10s",
//	  "storage_path": "session.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
