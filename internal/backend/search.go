package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
)

// Ensure SearchAPI implements the interface.
var _ driven.SearchAPI = (*SearchAPI)(nil)

// SearchAPI runs candidate matching against the backend.
type SearchAPI struct {
	client *Client
}

// NewSearchAPI creates a search API over the shared client.
func NewSearchAPI(client *Client) *SearchAPI {
	return &SearchAPI{client: client}
}

// candidateRecord is the loosely-typed wire shape of one candidate.
// Sub-scores may arrive flat or nested under "scores"; missing values
// default to zero rather than excluding the candidate.
type candidateRecord struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	CandidateName string          `json:"candidate_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Skills        []string        `json:"skills"`
	Clarity       *float64        `json:"clarity"`
	Experience    *float64        `json:"experience"`
	Loyalty       *float64        `json:"loyalty"`
	Reputation    *float64        `json:"reputation"`
	Scores        *scoreRecord    `json:"scores"`
	Highlights    []string        `json:"highlights"`
	SourceFile    string          `json:"source_file"`
	Filename      string          `json:"filename"`
	Group         string          `json:"group"`
	RawText       string          `json:"raw_text"`
	Text          string          `json:"text"`
}

type scoreRecord struct {
	Clarity    *float64 `json:"clarity"`
	Experience *float64 `json:"experience"`
	Loyalty    *float64 `json:"loyalty"`
	Reputation *float64 `json:"reputation"`
}

type searchResponse struct {
	Answer struct {
		CandidateDetails []candidateRecord `json:"candidate_details"`
		Summary          string            `json:"summary"`
	} `json:"answer"`
	Results []json.RawMessage `json:"results"`
}

// Search runs a free-text query via POST /search_api.
func (a *SearchAPI) Search(ctx context.Context, query, group string) (domain.SearchResponse, error) {
	payload := map[string]string{
		"query": query,
		"group": group,
	}

	var resp searchResponse
	if err := a.client.postJSON(ctx, "/search_api", payload, &resp); err != nil {
		return domain.SearchResponse{}, err
	}
	return normalizeSearchResponse(resp), nil
}

// MatchJobDescription uploads a job description via POST /upload_jd
// (multipart field "file") and returns the same shape as Search.
func (a *SearchAPI) MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error) {
	fields := map[string]string{"group": group}
	data, err := a.client.postMultipart(ctx, "/upload_jd", "file", []string{path}, fields)
	if err != nil {
		return domain.SearchResponse{}, err
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return domain.SearchResponse{}, fmt.Errorf("decode match response: %w", err)
	}
	return normalizeSearchResponse(resp), nil
}

func normalizeSearchResponse(resp searchResponse) domain.SearchResponse {
	out := domain.SearchResponse{
		Summary: resp.Answer.Summary,
	}

	out.Candidates = make([]domain.CandidateResult, 0, len(resp.Answer.CandidateDetails))
	for i := range resp.Answer.CandidateDetails {
		out.Candidates = append(out.Candidates, normalizeCandidate(resp.Answer.CandidateDetails[i], i))
	}

	for _, raw := range resp.Results {
		if chunk := chunkText(raw); chunk != "" {
			out.Chunks = append(out.Chunks, chunk)
		}
	}
	return out
}

func normalizeCandidate(r candidateRecord, index int) domain.CandidateResult {
	scores := domain.ScoreCard{
		Clarity:    scoreOr(r.Clarity, r.Scores, func(s *scoreRecord) *float64 { return s.Clarity }),
		Experience: scoreOr(r.Experience, r.Scores, func(s *scoreRecord) *float64 { return s.Experience }),
		Loyalty:    scoreOr(r.Loyalty, r.Scores, func(s *scoreRecord) *float64 { return s.Loyalty }),
		Reputation: scoreOr(r.Reputation, r.Scores, func(s *scoreRecord) *float64 { return s.Reputation }),
	}

	id := flexibleID(r.ID)
	if id == "" {
		id = "candidate-" + strconv.Itoa(index+1)
	}

	return domain.CandidateResult{
		ID:           id,
		Name:         firstNonEmpty(r.Name, r.CandidateName),
		Email:        r.Email,
		Phone:        r.Phone,
		Skills:       r.Skills,
		Scores:       scores,
		AverageScore: scores.Average(),
		Highlights:   r.Highlights,
		SourceFile:   firstNonEmpty(r.SourceFile, r.Filename),
		Group:        r.Group,
		RawText:      firstNonEmpty(r.RawText, r.Text),
	}
}

func scoreOr(flat *float64, nested *scoreRecord, pick func(*scoreRecord) *float64) float64 {
	if flat != nil {
		return *flat
	}
	if nested != nil {
		if v := pick(nested); v != nil {
			return *v
		}
	}
	return 0
}

// chunkText accepts result chunks sent as bare strings or as objects
// with a content/text field.
func chunkText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Content string `json:"content"`
		Text    string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return firstNonEmpty(obj.Content, obj.Text)
	}
	return ""
}
