package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// ResumeStatus is the server-side processing state of an uploaded resume.
type ResumeStatus string

const (
	StatusUploaded   ResumeStatus = "uploaded"
	StatusProcessing ResumeStatus = "processing"
	StatusCompleted  ResumeStatus = "completed"
	StatusFailed     ResumeStatus = "failed"
)

// FileType identifies the resume document format, derived from the
// original filename extension.
type FileType string

const (
	FileTypePDF     FileType = "pdf"
	FileTypeDOCX    FileType = "docx"
	FileTypeDOC     FileType = "doc"
	FileTypeUnknown FileType = "unknown"
)

// FileTypeFromName derives the file type from a filename extension.
func FileTypeFromName(name string) FileType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FileTypePDF
	case ".docx":
		return FileTypeDOCX
	case ".doc":
		return FileTypeDOC
	default:
		return FileTypeUnknown
	}
}

// Resume represents a single uploaded candidate document and its metadata.
// All persistent identifiers are assigned by the backend; the client never
// generates them.
type Resume struct {
	// ID is the backend-assigned opaque identifier.
	ID string

	// OriginalFilename is the filename as uploaded by the user.
	OriginalFilename string

	// StoredPath is the server-side storage path or stored filename.
	StoredPath string

	// Size is the file size in bytes. May be an estimate when the
	// backend omits the field.
	Size int64

	// FileType is derived from the original filename extension.
	FileType FileType

	// UploadedAt is when the file upload completed server-side.
	UploadedAt time.Time

	// Status is the server-side processing lifecycle state.
	Status ResumeStatus

	// Group is an optional categorisation label.
	Group string

	// Comment is the single outstanding annotation, if any.
	Comment *ResumeComment
}

// Group is a named tag used to partition resumes, for example by role
// or department.
type Group struct {
	// ID is the backend-assigned identifier. Optimistic local entries
	// carry an ephemeral client key until the next refresh.
	ID string

	// Name is the display name.
	Name string

	// CreatedAt is when the group was created.
	CreatedAt time.Time
}

// UploadReport summarises the outcome of a multi-file upload.
type UploadReport struct {
	Successful int
	Failed     int
	Total      int
	Message    string
	Errors     []string
}

// MutationResult is the structured outcome of a mutating operation.
// Mutations return this instead of bare errors so callers can branch on
// success without unwinding control flow.
type MutationResult struct {
	Success bool
	Message string
}
