package services

import (
	"context"
	"fmt"
	"os"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService orchestrates candidate matching: query validation,
// heuristic enrichment of sparse backend records, and ranking.
type SearchService struct {
	api driven.SearchAPI
}

// NewSearchService creates a search service over the backend port.
func NewSearchService(api driven.SearchAPI) *SearchService {
	return &SearchService{api: api}
}

// Search validates the query, runs it, and returns candidates ranked by
// average score descending.
func (s *SearchService) Search(ctx context.Context, query, group string) (domain.SearchResponse, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return domain.SearchResponse{}, err
	}

	resp, err := s.api.Search(ctx, query, group)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	s.finish(&resp)
	return resp, nil
}

// MatchJobDescription uploads a job description file and ranks the
// matched candidates the same way as a free-text search.
func (s *SearchService) MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error) {
	if _, err := os.Stat(path); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("job description %s: %w", path, err)
	}

	resp, err := s.api.MatchJobDescription(ctx, path, group)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	s.finish(&resp)
	return resp, nil
}

// finish fills gaps the backend left in each candidate from its raw
// text, then ranks. Enrichment only supplies missing fields; it never
// overrides a value the backend sent.
func (s *SearchService) finish(resp *domain.SearchResponse) {
	for i := range resp.Candidates {
		enrichCandidate(&resp.Candidates[i])
	}
	domain.RankCandidates(resp.Candidates)
	logger.Debug("search: %d candidates ranked", len(resp.Candidates))
}

func enrichCandidate(c *domain.CandidateResult) {
	if c.RawText == "" {
		return
	}

	if c.Email == "" || c.Phone == "" {
		contact := domain.ExtractContact(c.RawText)
		if c.Email == "" {
			c.Email = contact.Email
		}
		if c.Phone == "" {
			c.Phone = contact.Phone
		}
	}
	if len(c.Highlights) == 0 {
		c.Highlights = domain.ExtractHighlights(c.RawText, 3)
	}
	if len(c.Skills) == 0 {
		c.Skills = domain.ExtractSkills(c.RawText)
	}
}
