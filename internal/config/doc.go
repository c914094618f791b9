// Package config loads the gallery configuration file.
//
// # Overview
//
// The gallery reads one TOML file describing where the photo API lives, how
// long a request may take and where the TUI writes its log. Every field is
// optional and the file itself may be absent.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (-config), use it
//  2. Otherwise, use ~/.config/gallery/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Blank fields keep their defaults
//
// # TOML Format
//
//	base_url     = "https://jsonplaceholder.typicode.com/"
//	timeout      = "20s"
//	log_file     = "~/.local/state/gallery/gallery.log"
//	log_level    = "info"
//	auto_refresh = "0s"   # 0 disables
//
// Durations use time.ParseDuration syntax. log_level accepts zerolog level
// names (trace, debug, info, warn, error). Tilde expansion applies to
// log_file and to the config path itself.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and invalid field values, prefixed "parse config"
//
// Command-line flags override file values in the app package. Values are
// fixed once the client is built; there is no reload.
package config
