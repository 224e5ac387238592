// Package config loads runtime configuration for the careerpath terminal
// client.
//
// Sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (default ".env", override with -env) and the process
//     environment. Only CAREERPATH_API_BASE_URL is read; a value already
//     set in the environment beats the file.
//  3. An optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Flags
//
//	-a string   base URL of the backend API, e.g. http://localhost:8080/api
//	-s string   path of the local session database
//	-i int      online status check interval (seconds)
//	-t int      per-request timeout (seconds, 0 = transport default)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "session_db_path": "session.db",
//	  "online_check_interval": "3s",
//	  "request_timeout": "0s",
//	  "log_level": "info"
//	}
//
// Malformed input in any source panics; configuration errors are fatal at
// startup.
package config
