// Package domain contains the core business entities for hirebase.
// These types are pure data with no external dependencies, shared by
// services, adapters, and the backend API layer.
package domain
