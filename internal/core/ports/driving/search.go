package driving

import (
	"context"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// SearchService ranks candidates against queries or job descriptions.
type SearchService interface {
	// Search validates the query (minimum length) and returns the ranked
	// response. Validation failures never reach the network.
	Search(ctx context.Context, query, group string) (domain.SearchResponse, error)

	// MatchJobDescription uploads a job-description file and returns the
	// ranked response.
	MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error)
}
