package domain

import (
	"fmt"
	"strings"
)

// Upload constraints enforced client-side before any network call.
const (
	// QueryMinLen is the minimum search query length in runes.
	QueryMinLen = 5

	// MaxUploadBytes is the per-file upload size limit (10MB).
	MaxUploadBytes = 10 << 20
)

// ValidateQuery rejects free-text queries below the minimum length.
func ValidateQuery(query string) error {
	if len([]rune(strings.TrimSpace(query))) < QueryMinLen {
		return fmt.Errorf("%w (minimum %d)", ErrQueryTooShort, QueryMinLen)
	}
	return nil
}

// ValidateUpload checks a candidate file's name and size against the
// client-side upload constraints.
func ValidateUpload(name string, size int64) error {
	if FileTypeFromName(name) == FileTypeUnknown {
		return fmt.Errorf("%w: %s (want .pdf, .docx or .doc)", ErrUnsupportedFileType, name)
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, name, size)
	}
	return nil
}
