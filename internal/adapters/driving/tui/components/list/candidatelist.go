// Package list provides list components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/styles"
	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// CandidateList renders ranked candidates with keyboard navigation.
type CandidateList struct {
	styles     *styles.Styles
	candidates []domain.CandidateResult
	selected   int
	height     int
}

// NewCandidateList creates a new candidate list component.
func NewCandidateList(s *styles.Styles) *CandidateList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &CandidateList{
		styles: s,
		height: 20,
	}
}

// Init initialises the list.
func (l *CandidateList) Init() tea.Cmd {
	return nil
}

// Update handles list messages.
func (l *CandidateList) Update(msg tea.Msg) (*CandidateList, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the ranked candidates.
func (l *CandidateList) View() string {
	if len(l.candidates) == 0 {
		return l.styles.Muted.Render("No matching candidates.")
	}

	var b strings.Builder
	for i := range l.candidates {
		c := &l.candidates[i]
		name := c.Name
		if name == "" {
			name = c.ID
		}

		line := fmt.Sprintf("[%d] %s  %.1f", i+1, name, c.AverageScore)
		if i == l.selected {
			b.WriteString(l.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(l.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")

		detail := fmt.Sprintf("    clarity %.1f  experience %.1f  loyalty %.1f  reputation %.1f",
			c.Scores.Clarity, c.Scores.Experience, c.Scores.Loyalty, c.Scores.Reputation)
		b.WriteString(l.styles.Muted.Render(detail))
		b.WriteString("\n")

		if i == l.selected {
			if c.Email != "" || c.Phone != "" {
				b.WriteString(l.styles.Muted.Render("    " + strings.TrimSpace(c.Email+"  "+c.Phone)))
				b.WriteString("\n")
			}
			if len(c.Skills) > 0 {
				b.WriteString(l.styles.Muted.Render("    Skills: " + strings.Join(c.Skills, ", ")))
				b.WriteString("\n")
			}
			for _, h := range c.Highlights {
				b.WriteString(l.styles.Muted.Render("    - " + h))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// SetCandidates replaces the list contents and resets the selection.
func (l *CandidateList) SetCandidates(candidates []domain.CandidateResult) {
	l.candidates = candidates
	l.selected = 0
}

// Candidates returns the current list contents.
func (l *CandidateList) Candidates() []domain.CandidateResult {
	return l.candidates
}

// Selected returns the currently selected index.
func (l *CandidateList) Selected() int {
	return l.selected
}

// SelectedCandidate returns the selected candidate, or nil when empty.
func (l *CandidateList) SelectedCandidate() *domain.CandidateResult {
	if l.selected < 0 || l.selected >= len(l.candidates) {
		return nil
	}
	return &l.candidates[l.selected]
}

// MoveUp moves the selection up.
func (l *CandidateList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *CandidateList) MoveDown() {
	if l.selected < len(l.candidates)-1 {
		l.selected++
	}
}

// SetHeight sets the list height.
func (l *CandidateList) SetHeight(height int) {
	l.height = height
}
