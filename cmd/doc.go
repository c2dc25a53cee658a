// Package cmd provides the command-line interface for tagdata.
//
// This package implements the CLI commands using the Cobra framework on top
// of the built-in tag registry and the custom data loader.
//
// # Available Commands
//
//   - list: List the known tags with a one line summary
//   - show: Show the documentation of one tag, rendered or raw
//   - export: Write the tag table as an HTMLDataV1 document
//   - check: Validate custom HTMLDataV1 files, optionally on every change
//   - version: Show build information and the data version
//
// # Command Examples
//
//	// List tags as YAML, including configured custom data
//	tagdata list -o yaml --with-custom
//
//	// Hover text for a tag
//	tagdata show KeepAlive --width 60
//
//	// Export for an editor
//	tagdata export -f vue.html-data.json
//
//	// Validate custom data while editing it
//	tagdata check router.json --builtins --watch
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (TAGDATA_*)
//  3. Configuration file (.tagdata.yml)
//  4. Default values (lowest priority)
//
// # Error Handling
//
// Failures are returned as structured errors from internal/errors and cause
// a non-zero exit status. Unknown tag names print suggestions on stderr.
package cmd
