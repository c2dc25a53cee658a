// Package internal contains the core implementation packages for tagdata.
//
// # Package Organization
//
//   - htmldata: HTMLDataV1 types and the JSON/YAML codec
//   - registry: Immutable, validated tag tables with lookup and merge
//   - builtins: The embedded Vue built-in tag table
//   - customdata: Loading user supplied HTMLDataV1 files
//   - watcher: Debounced file watching for revalidation
//   - render: Terminal rendering of tag documentation
//   - config: Viper backed configuration with validation
//   - logging: Structured logging on log/slog
//   - errors: Structured errors, collections and suggestions
//   - version: Build information
//
// # Inter-Package Communication
//
//   - builtins and customdata both produce registry.Registry values
//   - registry.Merge combines them, rejecting name collisions
//   - watcher reports changed files, and the check command reloads them
//     through customdata
package internal
