package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery_TooShort(t *testing.T) {
	err := ValidateQuery("gol")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestValidateQuery_WhitespaceDoesNotCount(t *testing.T) {
	err := ValidateQuery("  ab  ")

	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestValidateQuery_MinimumLength(t *testing.T) {
	assert.NoError(t, ValidateQuery("golan"))
}

func TestValidateUpload_AcceptedTypes(t *testing.T) {
	for _, name := range []string{"cv.pdf", "cv.docx", "cv.doc", "CV.PDF"} {
		assert.NoError(t, ValidateUpload(name, 1024), name)
	}
}

func TestValidateUpload_RejectedType(t *testing.T) {
	err := ValidateUpload("cv.txt", 1024)

	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestValidateUpload_TooLarge(t *testing.T) {
	err := ValidateUpload("cv.pdf", MaxUploadBytes+1)

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestValidateUpload_ExactLimit(t *testing.T) {
	assert.NoError(t, ValidateUpload("cv.pdf", MaxUploadBytes))
}

func TestValidateCommentBody_TooShort(t *testing.T) {
	err := ValidateCommentBody("short")

	assert.ErrorIs(t, err, ErrCommentLength)
}

func TestValidateCommentBody_TooLong(t *testing.T) {
	err := ValidateCommentBody(strings.Repeat("x", CommentMaxLen+1))

	assert.ErrorIs(t, err, ErrCommentLength)
}

func TestValidateCommentBody_Boundaries(t *testing.T) {
	assert.NoError(t, ValidateCommentBody(strings.Repeat("x", CommentMinLen)))
	assert.NoError(t, ValidateCommentBody(strings.Repeat("x", CommentMaxLen)))
}

func TestFileTypeFromName(t *testing.T) {
	assert.Equal(t, FileTypePDF, FileTypeFromName("resume.pdf"))
	assert.Equal(t, FileTypeDOCX, FileTypeFromName("resume.docx"))
	assert.Equal(t, FileTypeDOC, FileTypeFromName("resume.doc"))
	assert.Equal(t, FileTypeUnknown, FileTypeFromName("resume.txt"))
}
