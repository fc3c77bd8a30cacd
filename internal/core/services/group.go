package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

// Ensure GroupService implements the interface.
var _ driving.GroupService = (*GroupService)(nil)

// GroupService owns the client-side group collection.
type GroupService struct {
	api driven.GroupAPI

	mu       sync.Mutex
	phase    driving.Phase
	groups   []domain.Group
	lastErr  error
	inFlight bool
	closed   bool
}

// NewGroupService creates a group service over the backend port.
func NewGroupService(api driven.GroupAPI) *GroupService {
	return &GroupService{
		api:   api,
		phase: driving.PhaseIdle,
	}
}

// Refresh fetches the group list. Same guard and retention rules as the
// resume service: one fetch at a time, stale data survives a failure.
func (s *GroupService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.phase = driving.PhaseLoading
	s.mu.Unlock()

	groups, err := s.api.ListGroups(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.closed {
		return nil
	}
	if err != nil {
		logger.Warn("group list fetch failed: %v", err)
		s.lastErr = err
		s.phase = driving.PhaseError
		return err
	}
	s.groups = groups
	s.lastErr = nil
	s.phase = driving.PhaseReady
	return nil
}

// Groups returns a copy of the current snapshot.
func (s *GroupService) Groups() []domain.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// Phase reports the fetch lifecycle state.
func (s *GroupService) Phase() driving.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the last fetch error, if any.
func (s *GroupService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Create appends the group optimistically under an ephemeral key, then
// replaces it with the backend record on success or rolls back on
// failure.
func (s *GroupService) Create(ctx context.Context, name string) (domain.Group, error) {
	if name == "" {
		return domain.Group{}, fmt.Errorf("group name: %w", domain.ErrInvalidInput)
	}

	placeholder := domain.Group{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	snapshot := make([]domain.Group, len(s.groups))
	copy(snapshot, s.groups)
	s.groups = append(s.groups, placeholder)
	s.mu.Unlock()

	created, err := s.api.CreateGroup(ctx, name)
	if err != nil {
		s.rollback(snapshot)
		return domain.Group{}, err
	}

	s.mu.Lock()
	for i := range s.groups {
		if s.groups[i].ID == placeholder.ID {
			if created.ID != "" {
				s.groups[i].ID = created.ID
			}
			if !created.CreatedAt.IsZero() {
				s.groups[i].CreatedAt = created.CreatedAt
			}
			created = s.groups[i]
			break
		}
	}
	s.mu.Unlock()

	return created, nil
}

// Delete removes a group optimistically. A rejection because resumes
// are still linked restores the snapshot and propagates the
// distinguishable error so callers can explain it; every other failure
// rolls back the same way with a generic error.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot := make([]domain.Group, len(s.groups))
	copy(snapshot, s.groups)

	kept := s.groups[:0]
	for _, g := range s.groups {
		if g.ID == id {
			continue
		}
		kept = append(kept, g)
	}
	s.groups = kept
	s.mu.Unlock()

	result, err := s.api.DeleteGroup(ctx, id)
	if err == nil && !result.Success {
		err = fmt.Errorf("delete group: %s", result.Message)
	}
	if err != nil {
		s.rollback(snapshot)
		return err
	}
	return nil
}

// Close discards the service; late fetch completions become no-ops.
func (s *GroupService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *GroupService) rollback(snapshot []domain.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.groups = snapshot
}
