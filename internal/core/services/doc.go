// Package services implements the driving ports. Each collection
// service owns the client-side state for one resource: fetch lifecycle,
// an in-flight guard, stale-data retention on failure, and optimistic
// mutations with snapshot rollback.
package services
