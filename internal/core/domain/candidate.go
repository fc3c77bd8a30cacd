package domain

import "sort"

// Number of scoring dimensions the backend assigns per candidate.
const scoreDimensions = 4

// ScoreCard holds the four 0-10 sub-scores assigned per candidate.
// Missing sub-scores are zero, not excluded from the average.
type ScoreCard struct {
	Clarity    float64
	Experience float64
	Loyalty    float64
	Reputation float64
}

// Average returns the arithmetic mean of the four sub-scores.
func (s ScoreCard) Average() float64 {
	return (s.Clarity + s.Experience + s.Loyalty + s.Reputation) / scoreDimensions
}

// CandidateResult is an ephemeral, per-search-response record derived
// from backend search output. It lives only within one request/response
// cycle and is never persisted or cached.
type CandidateResult struct {
	// ID identifies the candidate within this result set.
	ID string

	// Name is the candidate display name.
	Name string

	// Email and Phone are optional contact fields, parsed from raw
	// resume text when the backend omits them.
	Email string
	Phone string

	// Skills are tag-style skill labels.
	Skills []string

	// Scores are the backend-assigned sub-scores.
	Scores ScoreCard

	// AverageScore is the arithmetic mean of the sub-scores.
	AverageScore float64

	// Highlights are free-text snippets supporting the match.
	Highlights []string

	// SourceFile is the originating resume filename.
	SourceFile string

	// Group is the linked group label, if any.
	Group string

	// RawText is the raw resume excerpt the backend returned, kept for
	// best-effort enrichment. Not displayed directly.
	RawText string
}

// SearchResponse is the common shape of free-text search and
// job-description matching.
type SearchResponse struct {
	// Candidates is the ranked result set, sorted by AverageScore
	// descending.
	Candidates []CandidateResult

	// Summary is an optional natural-language summary of the result set.
	Summary string

	// Chunks are the raw matched text fragments the backend based the
	// answer on.
	Chunks []string
}

// RankCandidates recomputes each candidate's average score and sorts the
// slice by average descending, in place. Equal averages keep their input
// order.
func RankCandidates(candidates []CandidateResult) {
	for i := range candidates {
		candidates[i].AverageScore = candidates[i].Scores.Average()
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].AverageScore > candidates[j].AverageScore
	})
}
