// Package backend implements the driven ports over the resume backend's
// REST API. It owns the HTTP client wrapper (timeout, bounded retry,
// throttling) and the normalisation of the backend's loosely-typed
// responses into domain types.
package backend
