package domain

import "time"

// Comment length bounds enforced client-side before any network call.
const (
	CommentMinLen = 10
	CommentMaxLen = 200
)

// ResumeComment is a free-text annotation on a resume. The UI keeps at
// most one outstanding comment per resume; an optimistic local copy is
// superseded by server truth on the next refresh.
type ResumeComment struct {
	// ID is the backend identifier, or an ephemeral client key for an
	// optimistic copy that has not been confirmed yet.
	ID string

	// ResumeID links to the owning resume.
	ResumeID string

	// Body is the comment text, CommentMinLen..CommentMaxLen characters.
	Body string

	// Author is a display label for who wrote the comment.
	Author string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCommentBody checks the client-side length bounds.
func ValidateCommentBody(body string) error {
	n := len([]rune(body))
	if n < CommentMinLen || n > CommentMaxLen {
		return ErrCommentLength
	}
	return nil
}
