package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Price)
	assert.NotEqual(t, theme.Primary, theme.Secondary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestNewStyles_UsesTheme(t *testing.T) {
	theme := DefaultTheme()
	theme.Price = "#FFFFFF"

	s := NewStyles(theme)

	assert.Equal(t, theme, s.Theme())
	assert.Equal(t, lipgloss.Color("#FFFFFF"), s.Price.GetForeground())
	assert.True(t, s.Title.GetBold())
}

func TestDefaultStyles_Render(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Price.Render("$387.20"), "$387.20")
	assert.Contains(t, s.Muted.Render("direct"), "direct")
}
