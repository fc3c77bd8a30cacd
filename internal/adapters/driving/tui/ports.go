// Package tui provides an interactive terminal user interface for
// hirebase. It is a driving adapter over the core service ports.
package tui

import (
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resume owns the resume collection state.
	Resume driving.ResumeService

	// Group owns the group collection state.
	Group driving.GroupService

	// Search ranks candidates against queries.
	Search driving.SearchService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(resume driving.ResumeService, group driving.GroupService, search driving.SearchService) *Ports {
	return &Ports{
		Resume: resume,
		Group:  group,
		Search: search,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Resume == nil {
		return ErrMissingResumeService
	}
	if p.Group == nil {
		return ErrMissingGroupService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
