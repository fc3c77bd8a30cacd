package driven

import (
	"context"
	"io"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// ResumeAPI is the backend surface for resume records and files.
type ResumeAPI interface {
	// ListResumes fetches all resume records.
	ListResumes(ctx context.Context) ([]domain.Resume, error)

	// UploadResumes uploads one or more files. Paths must already be
	// validated client-side.
	UploadResumes(ctx context.Context, paths []string) (domain.UploadReport, error)

	// DeleteResume deletes a resume by backend ID.
	DeleteResume(ctx context.Context, id string) (domain.MutationResult, error)

	// FetchFile streams the raw bytes of a stored file.
	// The caller must close the returned reader.
	FetchFile(ctx context.Context, filename string) (io.ReadCloser, error)
}

// GroupAPI is the backend surface for group CRUD.
type GroupAPI interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
	CreateGroup(ctx context.Context, name string) (domain.Group, error)

	// DeleteGroup deletes a group. A rejection because resumes are still
	// linked is returned as domain.ErrGroupHasResumes.
	DeleteGroup(ctx context.Context, id string) (domain.MutationResult, error)
}

// CommentAPI is the backend surface for per-resume comments.
type CommentAPI interface {
	// SetComment creates or updates the single comment on a resume.
	SetComment(ctx context.Context, resumeID, body, author string) (domain.MutationResult, error)

	// DeleteComment removes the comment from a resume.
	DeleteComment(ctx context.Context, resumeID string) (domain.MutationResult, error)
}

// SearchAPI is the backend surface for candidate matching.
type SearchAPI interface {
	// Search runs a free-text query, optionally scoped to a group.
	Search(ctx context.Context, query, group string) (domain.SearchResponse, error)

	// MatchJobDescription uploads a job-description file and returns the
	// same response shape as Search.
	MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error)
}
