// Package driven defines the outbound port interfaces the core services
// depend on. The backend package provides the HTTP implementations.
package driven
