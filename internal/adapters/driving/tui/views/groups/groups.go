// Package groups provides the group management view for the TUI.
package groups

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/input"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/components/status"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/keymap"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/messages"
	"github.com/hirebase/hirebase-cli/internal/adapters/driving/tui/styles"
	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driving"
)

// View lists groups with create and delete actions.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	nameInput *input.QueryInput
	statusbar *status.Bar

	groupService driving.GroupService
	ctx          context.Context

	groups   []domain.Group
	selected int
	creating bool
	width    int
	height   int
	err      error
}

// NewView creates a new groups view.
func NewView(s *styles.Styles, km *keymap.KeyMap, groupService driving.GroupService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:       s,
		keymap:       km,
		nameInput:    input.NewQueryInput(s),
		statusbar:    status.NewBar(s, km),
		groupService: groupService,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial fetch.
func (v *View) Init() tea.Cmd {
	return v.loadGroups()
}

// Update handles messages for the groups view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.GroupsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.groups = msg.Groups
		if v.selected >= len(v.groups) {
			v.selected = 0
		}
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetItemCount(len(v.groups))
		return v, nil

	case messages.GroupCreated:
		v.creating = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		}
		return v, v.loadGroups()

	case messages.GroupDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			if domain.IsGroupHasResumes(msg.Err) {
				v.statusbar.SetMessage("group still has resumes")
			} else {
				v.statusbar.SetMessage(msg.Err.Error())
			}
		}
		return v, v.loadGroups()
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.creating {
		switch msg.Type {
		case tea.KeyEsc:
			v.creating = false
			return v, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(v.nameInput.Value())
			if name == "" {
				return v, nil
			}
			return v, v.createGroup(name)
		default:
			var cmd tea.Cmd
			v.nameInput, cmd = v.nameInput.Update(msg)
			return v, cmd
		}
	}

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
		if v.selected < len(v.groups)-1 {
			v.selected++
		}
	case msg.String() == "c":
		v.creating = true
		return v, v.nameInput.Reset()
	case keymap.Matches(msg.String(), v.keymap.Delete):
		if v.selected < len(v.groups) {
			return v, v.deleteGroup(v.groups[v.selected].ID)
		}
	case keymap.Matches(msg.String(), v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.loadGroups()
	}
	return v, nil
}

// View renders the group list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Groups"))
	b.WriteString("\n\n")

	if v.creating {
		b.WriteString(v.nameInput.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[Enter] Create  [Esc] Cancel"))
		b.WriteString("\n\n")
	}

	if len(v.groups) == 0 && !v.creating {
		b.WriteString(v.styles.Muted.Render("No groups. Press c to create one."))
		b.WriteString("\n")
	}

	for i, g := range v.groups {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + g.Name))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + g.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[c] Create  [d] Delete  [r] Refresh  [Esc] Back"))
	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) loadGroups() tea.Cmd {
	return func() tea.Msg {
		err := v.groupService.Refresh(v.ctx)
		if err == nil {
			err = v.groupService.Err()
		}
		return messages.GroupsLoaded{
			Groups: v.groupService.Groups(),
			Err:    err,
		}
	}
}

func (v *View) createGroup(name string) tea.Cmd {
	return func() tea.Msg {
		group, err := v.groupService.Create(v.ctx, name)
		return messages.GroupCreated{Group: group, Err: err}
	}
}

func (v *View) deleteGroup(id string) tea.Cmd {
	return func() tea.Msg {
		return messages.GroupDeleted{
			ID:  id,
			Err: v.groupService.Delete(v.ctx, id),
		}
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.nameInput.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Groups returns the displayed groups.
func (v *View) Groups() []domain.Group {
	return v.groups
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Creating reports whether the create prompt is open.
func (v *View) Creating() bool {
	return v.creating
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
