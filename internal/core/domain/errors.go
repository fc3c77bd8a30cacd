package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by the backend layer.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooShort indicates a search query below the minimum length.
	// Rejected client-side before any network call.
	ErrQueryTooShort = errors.New("query must be at least 5 characters")

	// ErrCommentLength indicates a comment body outside the 10-200
	// character bounds.
	ErrCommentLength = errors.New("comment must be between 10 and 200 characters")

	// ErrUnsupportedFileType indicates a file that is not a PDF or Word
	// document.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge indicates a file above the upload size limit.
	ErrFileTooLarge = errors.New("file exceeds upload size limit")

	// ErrGroupHasResumes indicates a group cannot be deleted because
	// resumes are still linked to it. Surfaced distinctly so the UI can
	// explain the rejection instead of showing a generic failure.
	ErrGroupHasResumes = errors.New("group still has linked resumes")
)

// IsGroupHasResumes reports whether err is the linked-resumes rejection.
func IsGroupHasResumes(err error) bool {
	return errors.Is(err, ErrGroupHasResumes)
}
