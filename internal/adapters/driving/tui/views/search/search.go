// Package search provides the candidate search view for the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/input"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/list"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/status"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/messages"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/styles"
	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

// View is the candidate search view: query input, ranked results and a
// status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.CandidateList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	summary    string
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing, false = navigating results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQueryInput(s),
		list:          list.NewCandidateList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.SearchCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			v.focusInput = true
			return v, v.input.Focus()
		}
		v.err = nil
		v.summary = msg.Response.Summary
		v.list.SetCandidates(msg.Response.Candidates)
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetItemCount(len(msg.Response.Candidates))
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if msg.Type == tea.KeyEnter && v.focusInput {
		query := v.input.Value()
		if query == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateLoading)
		v.focusInput = false
		v.input.Blur()
		return v, v.performSearch(query)
	}

	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode.
	switch {
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.statusbar.Clear()
		return v, v.input.Reset()
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	}
	return v, nil
}

// performSearch runs the query off the Update loop.
func (v *View) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := v.searchService.Search(v.ctx, query, "")
		return messages.SearchCompleted{Response: resp, Err: err}
	}
}

// View renders the search view.
func (v *View) View() string {
	out := v.styles.Title.Render("Candidate Search") + "\n\n"
	out += v.input.View() + "\n\n"
	if v.summary != "" {
		out += v.styles.Muted.Render(v.summary) + "\n\n"
	}
	out += v.list.View() + "\n"
	out += v.statusbar.View()
	return out
}

// Reset clears the view state for a fresh search.
func (v *View) Reset() {
	v.focusInput = true
	v.summary = ""
	v.err = nil
	v.list.SetCandidates(nil)
	v.statusbar.Clear()
	v.input.SetValue("")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.list.SetHeight(height - 8)
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// Candidates returns the current ranked candidates.
func (v *View) Candidates() []domain.CandidateResult {
	return v.list.Candidates()
}

// SelectedIndex returns the selected candidate index.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
