package tui

import "errors"

// ErrMissingResumeService is returned when the resume service is not provided.
var ErrMissingResumeService = errors.New("tui: resume service is required")

// ErrMissingGroupService is returned when the group service is not provided.
var ErrMissingGroupService = errors.New("tui: group service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")
