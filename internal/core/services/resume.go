package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

// Ensure ResumeService implements the interface.
var _ driving.ResumeService = (*ResumeService)(nil)

// ResumeService owns the client-side resume collection.
type ResumeService struct {
	api      driven.ResumeAPI
	comments driven.CommentAPI

	mu       sync.Mutex
	phase    driving.Phase
	resumes  []domain.Resume
	lastErr  error
	inFlight bool
	closed   bool
}

// NewResumeService creates a resume service over the backend ports.
func NewResumeService(api driven.ResumeAPI, comments driven.CommentAPI) *ResumeService {
	return &ResumeService{
		api:      api,
		comments: comments,
		phase:    driving.PhaseIdle,
	}
}

// Refresh fetches the resume list. The in-flight guard is a synchronous
// flag under the mutex, not the phase field, so overlapping calls cannot
// race: a second call while one is running is a no-op. On failure the
// previous snapshot is retained so the caller never flickers to empty.
func (s *ResumeService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.inFlight = true
	s.phase = driving.PhaseLoading
	s.mu.Unlock()

	resumes, err := s.api.ListResumes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.closed {
		// Late completion after Close: discard.
		return nil
	}
	if err != nil {
		logger.Warn("resume list fetch failed: %v", err)
		s.lastErr = err
		s.phase = driving.PhaseError
		return err
	}
	s.resumes = resumes
	s.lastErr = nil
	s.phase = driving.PhaseReady
	return nil
}

// Resumes returns a filtered, paginated copy of the current snapshot.
func (s *ResumeService) Resumes(filter driving.ResumeFilter) []domain.Resume {
	s.mu.Lock()
	snapshot := make([]domain.Resume, len(s.resumes))
	copy(snapshot, s.resumes)
	s.mu.Unlock()

	filtered := snapshot[:0]
	for _, r := range snapshot {
		if filter.Group != "" && r.Group != filter.Group {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		filtered = append(filtered, r)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start >= len(filtered) {
			return []domain.Resume{}
		}
		end := start + filter.PageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		filtered = filtered[start:end]
	}

	return filtered
}

// Phase reports the fetch lifecycle state.
func (s *ResumeService) Phase() driving.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the last fetch error, if any.
func (s *ResumeService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Upload validates the files client-side, uploads them, and refreshes
// the collection so the new records appear.
func (s *ResumeService) Upload(ctx context.Context, paths []string) (domain.UploadReport, error) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return domain.UploadReport{}, fmt.Errorf("stat %s: %w", p, err)
		}
		if err := domain.ValidateUpload(info.Name(), info.Size()); err != nil {
			return domain.UploadReport{}, err
		}
	}

	report, err := s.api.UploadResumes(ctx, paths)
	if err != nil {
		return report, err
	}

	// Best-effort: the upload already succeeded, a failed refresh only
	// delays visibility until the next one.
	if err := s.Refresh(ctx); err != nil {
		logger.Warn("refresh after upload failed: %v", err)
	}
	return report, nil
}

// Delete removes a resume optimistically and rolls back on failure.
func (s *ResumeService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot := make([]domain.Resume, len(s.resumes))
	copy(snapshot, s.resumes)

	kept := s.resumes[:0]
	found := false
	for _, r := range s.resumes {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	s.resumes = kept
	s.mu.Unlock()

	if !found {
		logger.Debug("delete: resume %s not in local snapshot", id)
	}

	result, err := s.api.DeleteResume(ctx, id)
	if err == nil && !result.Success {
		err = fmt.Errorf("delete resume: %s", result.Message)
	}
	if err != nil {
		s.rollback(snapshot)
		return err
	}
	return nil
}

// Download streams a stored file into destPath.
func (s *ResumeService) Download(ctx context.Context, filename, destPath string) error {
	rc, err := s.api.FetchFile(ctx, filename)
	if err != nil {
		return err
	}
	defer rc.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return nil
}

// SetComment validates and applies a comment optimistically. The local
// copy carries an ephemeral client key and is superseded by server truth
// on the next refresh.
func (s *ResumeService) SetComment(ctx context.Context, resumeID, body, author string) error {
	if err := domain.ValidateCommentBody(body); err != nil {
		return err
	}

	now := time.Now()
	optimistic := &domain.ResumeComment{
		ID:        uuid.NewString(),
		ResumeID:  resumeID,
		Body:      body,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	snapshot, err := s.swapComment(resumeID, optimistic)
	if err != nil {
		return err
	}

	result, callErr := s.comments.SetComment(ctx, resumeID, body, author)
	if callErr == nil && !result.Success {
		callErr = fmt.Errorf("set comment: %s", result.Message)
	}
	if callErr != nil {
		s.rollback(snapshot)
		return callErr
	}
	return nil
}

// DeleteComment removes a comment optimistically.
func (s *ResumeService) DeleteComment(ctx context.Context, resumeID string) error {
	snapshot, err := s.swapComment(resumeID, nil)
	if err != nil {
		return err
	}

	result, callErr := s.comments.DeleteComment(ctx, resumeID)
	if callErr == nil && !result.Success {
		callErr = fmt.Errorf("delete comment: %s", result.Message)
	}
	if callErr != nil {
		s.rollback(snapshot)
		return callErr
	}
	return nil
}

// Close discards the service. Any in-flight fetch completion becomes a
// no-op instead of writing state after teardown.
func (s *ResumeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// swapComment replaces the comment on one resume and returns the
// pre-mutation snapshot for rollback.
func (s *ResumeService) swapComment(resumeID string, comment *domain.ResumeComment) ([]domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Resume, len(s.resumes))
	copy(snapshot, s.resumes)

	for i := range s.resumes {
		if s.resumes[i].ID == resumeID {
			s.resumes[i].Comment = comment
			return snapshot, nil
		}
	}
	return nil, fmt.Errorf("resume %s: %w", resumeID, domain.ErrNotFound)
}

func (s *ResumeService) rollback(snapshot []domain.Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.resumes = snapshot
}
