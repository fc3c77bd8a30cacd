package driving

import (
	"context"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// GroupService owns the client-side group collection state.
type GroupService interface {
	// Refresh fetches the group list. Concurrent calls while a fetch is
	// in flight are no-ops; failures retain previously loaded data.
	Refresh(ctx context.Context) error

	// Groups returns the current snapshot.
	Groups() []domain.Group

	// Phase reports the fetch lifecycle state.
	Phase() Phase

	// Err returns the last fetch error, if any.
	Err() error

	// Create appends an optimistic local group and confirms it with the
	// backend, rolling back on failure.
	Create(ctx context.Context, name string) (domain.Group, error)

	// Delete removes a group optimistically. A linked-resumes rejection
	// is returned as domain.ErrGroupHasResumes after the local state is
	// restored.
	Delete(ctx context.Context, id string) error

	// Close discards the service; any in-flight fetch completion becomes
	// a no-op.
	Close()
}
