package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_Palette(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, lipgloss.Color("#2563EB"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#0D9488"), theme.Secondary)
	assert.Equal(t, lipgloss.Color("#F87171"), theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestDefaultStyles_RenderText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("hirebase"), "hirebase")
	assert.Contains(t, s.Error.Render("failed"), "failed")
}

func TestStyles_TitleIsBold(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Selected.GetBold())
}
