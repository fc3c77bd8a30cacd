// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewResumes lists the resume collection.
	ViewResumes
	// ViewSearch is the candidate search view.
	ViewSearch
	// ViewGroups is the group management view.
	ViewGroups
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewResumes:
		return "resumes"
	case ViewSearch:
		return "search"
	case ViewGroups:
		return "groups"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ResumesLoaded carries the resume collection from the service.
type ResumesLoaded struct {
	Resumes []domain.Resume
	Err     error
}

// ResumeDeleted signals a resume deletion completed.
type ResumeDeleted struct {
	ID  string
	Err error
}

// GroupsLoaded carries the group list from the service.
type GroupsLoaded struct {
	Groups []domain.Group
	Err    error
}

// GroupCreated signals a group was created.
type GroupCreated struct {
	Group domain.Group
	Err   error
}

// GroupDeleted signals a group deletion completed.
type GroupDeleted struct {
	ID  string
	Err error
}

// SearchCompleted carries ranked candidates back to the model.
type SearchCompleted struct {
	Response domain.SearchResponse
	Err      error
}

// CandidateSelected is sent when a ranked candidate is selected.
type CandidateSelected struct {
	Index int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
