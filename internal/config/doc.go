// Package config loads tripdesk's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tripdesk/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	endpoint = "https://jsonplaceholder.typicode.com/users"
//	page_size = 5
//	timeout_seconds = 10
//	log_file = "~/.local/state/tripdesk/tripdesk.log"
//	log_level = "info"
//	log_format = "text"
//
// Every field is optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for unreadable files ("open config", "read config"),
// malformed TOML ("parse config"), and values that fail validation
// ("invalid config"): an endpoint that is not http(s) or lacks a host, and a
// non-positive page_size or timeout_seconds, and a log_format other
// than text or json. A missing file is not an error.
package config
