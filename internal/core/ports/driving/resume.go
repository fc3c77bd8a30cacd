package driving

import (
	"context"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// Phase is the fetch lifecycle state of a collection service.
type Phase int

const (
	// PhaseIdle means no fetch has been attempted yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is in flight.
	PhaseLoading
	// PhaseReady means the last fetch succeeded.
	PhaseReady
	// PhaseError means the last fetch failed. Previously loaded data is
	// retained.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// ResumeFilter narrows the in-memory resume listing.
type ResumeFilter struct {
	// Group keeps only resumes with this group label, when non-empty.
	Group string

	// Status keeps only resumes in this lifecycle state, when non-empty.
	Status domain.ResumeStatus

	// Page is 1-based; zero means no pagination.
	Page int

	// PageSize is the page length; zero means no pagination.
	PageSize int
}

// ResumeService owns the client-side resume collection state.
type ResumeService interface {
	// Refresh fetches the resume list from the backend. A concurrent
	// call while a fetch is in flight is a no-op. On failure previously
	// loaded data is retained and the error is returned.
	Refresh(ctx context.Context) error

	// Resumes returns the current snapshot, optionally filtered and
	// paginated.
	Resumes(filter ResumeFilter) []domain.Resume

	// Phase reports the fetch lifecycle state.
	Phase() Phase

	// Err returns the last fetch error, if any.
	Err() error

	// Upload validates and uploads files, then refreshes the collection.
	Upload(ctx context.Context, paths []string) (domain.UploadReport, error)

	// Delete removes a resume optimistically, rolling the local state
	// back if the backend rejects the call.
	Delete(ctx context.Context, id string) error

	// Download streams a stored file into destPath.
	Download(ctx context.Context, filename, destPath string) error

	// SetComment validates and applies a comment optimistically.
	SetComment(ctx context.Context, resumeID, body, author string) error

	// DeleteComment removes a comment optimistically.
	DeleteComment(ctx context.Context, resumeID string) error

	// Close discards the service; any in-flight fetch completion becomes
	// a no-op.
	Close()
}
