// Package resumes provides the resume collection view for the TUI.
package resumes

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/status"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/messages"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/styles"
	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

// View lists the resume collection with delete and refresh actions.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	resumeService driving.ResumeService
	ctx           context.Context

	resumes  []domain.Resume
	selected int
	width    int
	height   int
	ready    bool
	err      error
}

// NewView creates a new resumes view.
func NewView(s *styles.Styles, km *keymap.KeyMap, resumeService driving.ResumeService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		statusbar:     status.NewBar(s, km),
		resumeService: resumeService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial fetch.
func (v *View) Init() tea.Cmd {
	return v.loadResumes()
}

// Update handles messages for the resumes view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ResumesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			// Keep whatever was on screen; stale data beats a blank list.
			return v, nil
		}
		v.err = nil
		v.resumes = msg.Resumes
		if v.selected >= len(v.resumes) {
			v.selected = 0
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetItemCount(len(v.resumes))
		return v, nil

	case messages.ResumeDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, v.loadResumes()
		}
		return v, v.loadResumes()

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.selected < len(v.resumes)-1 {
			v.selected++
		}
	case keymap.Matches(msg.String(), v.keymap.Delete):
		if v.selected < len(v.resumes) {
			id := v.resumes[v.selected].ID
			return v, v.deleteResume(id)
		}
	case keymap.Matches(msg.String(), v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadResumes()
	}
	return v, nil
}

// View renders the resume list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Resumes"))
	b.WriteString("\n\n")

	if len(v.resumes) == 0 {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Failed to load resumes: " + v.err.Error()))
		} else {
			b.WriteString(v.styles.Muted.Render("No resumes uploaded yet."))
		}
		b.WriteString("\n")
	}

	for i := range v.resumes {
		r := &v.resumes[i]
		line := fmt.Sprintf("%s  (%s)", r.OriginalFilename, r.Status)
		if r.Group != "" {
			line += "  [" + r.Group + "]"
		}
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
		if i == v.selected && r.Comment != nil {
			b.WriteString(v.styles.Muted.Render("    " + r.Comment.Body))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// loadResumes refreshes the collection off the Update loop.
func (v *View) loadResumes() tea.Cmd {
	return func() tea.Msg {
		err := v.resumeService.Refresh(v.ctx)
		if err == nil {
			err = v.resumeService.Err()
		}
		return messages.ResumesLoaded{
			Resumes: v.resumeService.Resumes(driving.ResumeFilter{}),
			Err:     err,
		}
	}
}

func (v *View) deleteResume(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.ResumeDeleted{
			ID:  id,
			Err: v.resumeService.Delete(v.ctx, id),
		}
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Resumes returns the displayed collection.
func (v *View) Resumes() []domain.Resume {
	return v.resumes
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
