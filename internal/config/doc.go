// Package config provides configuration types, loading, validation,
// and hot reload for the router service.
//
// Configuration is YAML with ${VAR} and ${VAR:-default} environment
// substitution:
//
//	server:
//	  host: 0.0.0.0
//	  port: ${PORT:-8080}
//	router:
//	  cacheLimit: 1024
//	logging:
//	  level: info
//
// Load reads and parses a file; Validate checks field constraints and
// reports the offending field through util.ConfigError. A Watcher
// re-reads the file on change (debounced) and hands validated configs
// to a callback, so tunables like the match-cache limit and the log
// level can be applied without a restart.
package config
