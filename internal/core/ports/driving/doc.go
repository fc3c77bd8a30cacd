// Package driving defines the inbound port interfaces exposed by the
// core services to the CLI and TUI adapters.
package driving
