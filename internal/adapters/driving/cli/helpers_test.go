package cli

import (
	"context"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

// setupTestServices injects fake services into the command tree and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prevResume, prevGroup, prevSearch := resumeService, groupService, searchService

	resumeService = &stubResumeService{
		resumes: []domain.Resume{
			{ID: "1", OriginalFilename: "jane.pdf", Status: domain.StatusCompleted, Group: "backend", Size: 4096},
			{ID: "2", OriginalFilename: "bob.docx", Status: domain.StatusProcessing, Size: 2048},
		},
	}
	groupService = &stubGroupService{
		groups: []domain.Group{{ID: "g1", Name: "backend"}},
	}
	searchService = &stubSearchService{
		response: domain.SearchResponse{
			Summary: "1 match",
			Candidates: []domain.CandidateResult{
				{ID: "c1", Name: "Jane", Scores: domain.ScoreCard{Clarity: 8, Experience: 7, Loyalty: 9, Reputation: 6}, AverageScore: 7.5},
			},
		},
	}

	return func() {
		resumeService, groupService, searchService = prevResume, prevGroup, prevSearch
	}
}

type stubResumeService struct {
	resumes   []domain.Resume
	refreshed bool
	deleted   []string
	err       error
}

func (s *stubResumeService) Refresh(ctx context.Context) error {
	s.refreshed = true
	return s.err
}

func (s *stubResumeService) Resumes(filter driving.ResumeFilter) []domain.Resume {
	out := make([]domain.Resume, 0, len(s.resumes))
	for _, r := range s.resumes {
		if filter.Group != "" && r.Group != filter.Group {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *stubResumeService) Phase() driving.Phase { return driving.PhaseReady }
func (s *stubResumeService) Err() error           { return s.err }

func (s *stubResumeService) Upload(ctx context.Context, paths []string) (domain.UploadReport, error) {
	return domain.UploadReport{Successful: len(paths), Total: len(paths)}, s.err
}

func (s *stubResumeService) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubResumeService) Download(ctx context.Context, filename, destPath string) error {
	return s.err
}

func (s *stubResumeService) SetComment(ctx context.Context, resumeID, body, author string) error {
	if err := domain.ValidateCommentBody(body); err != nil {
		return err
	}
	return s.err
}

func (s *stubResumeService) DeleteComment(ctx context.Context, resumeID string) error {
	return s.err
}

func (s *stubResumeService) Close() {}

type stubGroupService struct {
	groups []domain.Group
	err    error
}

func (s *stubGroupService) Refresh(ctx context.Context) error { return s.err }
func (s *stubGroupService) Groups() []domain.Group            { return s.groups }
func (s *stubGroupService) Phase() driving.Phase              { return driving.PhaseReady }
func (s *stubGroupService) Err() error                        { return s.err }

func (s *stubGroupService) Create(ctx context.Context, name string) (domain.Group, error) {
	return domain.Group{ID: "g-new", Name: name}, s.err
}

func (s *stubGroupService) Delete(ctx context.Context, id string) error { return s.err }
func (s *stubGroupService) Close()                                      {}

type stubSearchService struct {
	response  domain.SearchResponse
	err       error
	lastQuery string
}

func (s *stubSearchService) Search(ctx context.Context, query, group string) (domain.SearchResponse, error) {
	if err := domain.ValidateQuery(query); err != nil {
		return domain.SearchResponse{}, err
	}
	s.lastQuery = query
	return s.response, s.err
}

func (s *stubSearchService) MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error) {
	return s.response, s.err
}
