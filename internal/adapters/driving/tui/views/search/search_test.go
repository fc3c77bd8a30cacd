package search

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/messages"
	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

type stubSearchService struct {
	response  domain.SearchResponse
	err       error
	lastQuery string
}

func (s *stubSearchService) Search(ctx context.Context, query, group string) (domain.SearchResponse, error) {
	s.lastQuery = query
	return s.response, s.err
}

func (s *stubSearchService) MatchJobDescription(ctx context.Context, path, group string) (domain.SearchResponse, error) {
	return s.response, s.err
}

func rankedResponse() domain.SearchResponse {
	return domain.SearchResponse{
		Summary: "2 candidates matched",
		Candidates: []domain.CandidateResult{
			{ID: "c1", Name: "Jane Doe", AverageScore: 7.5},
			{ID: "c2", Name: "Bob Smith", AverageScore: 4.0},
		},
	}
}

func TestSearchView_EnterSubmitsQuery(t *testing.T) {
	svc := &stubSearchService{response: rankedResponse()}
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	v.input.SetValue("golang engineer")

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	completed, ok := msg.(messages.SearchCompleted)
	require.True(t, ok)
	assert.NoError(t, completed.Err)
	assert.Equal(t, "golang engineer", svc.lastQuery)
}

func TestSearchView_EmptyQueryIsIgnored(t *testing.T) {
	svc := &stubSearchService{}
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.lastQuery)
}

func TestSearchView_SearchCompletedShowsResults(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)

	v, _ = v.Update(messages.SearchCompleted{Response: rankedResponse()})

	assert.Len(t, v.Candidates(), 2)
	out := v.View()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "2 candidates matched")
}

func TestSearchView_SearchCompletedErrorRefocusesInput(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)
	v.focusInput = false

	v, _ = v.Update(messages.SearchCompleted{Err: assert.AnError})

	assert.Equal(t, assert.AnError, v.Err())
	assert.True(t, v.focusInput)
}

func TestSearchView_ResultsNavigation(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)
	v, _ = v.Update(messages.SearchCompleted{Response: rankedResponse()})
	v.focusInput = false

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	assert.Equal(t, 1, v.SelectedIndex())
}

func TestSearchView_NewSearchResets(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)
	v, _ = v.Update(messages.SearchCompleted{Response: rankedResponse()})
	v.focusInput = false

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, v.focusInput)
}

func TestSearchView_EscReturnsToMenu(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestSearchView_ResetClearsState(t *testing.T) {
	v := NewView(nil, nil, &stubSearchService{})
	v.SetDimensions(100, 40)
	v, _ = v.Update(messages.SearchCompleted{Response: rankedResponse()})

	v.Reset()

	assert.Empty(t, v.Candidates())
	assert.Empty(t, v.Query())
	assert.True(t, v.focusInput)
}
