package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"Neon", "Dracula", "Slate"}, ThemeNames())
}

func TestNextTheme(t *testing.T) {
	assert.Equal(t, "Dracula", NextTheme("Neon"))
	assert.Equal(t, "Slate", NextTheme("Dracula"))
	assert.Equal(t, "Neon", NextTheme("Slate"))
	assert.Equal(t, "Neon", NextTheme("unknown"))
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.Accent, name)
		assert.NotEmpty(t, th.Create, name)
		assert.NotEqual(t, th.Accent, th.Create, name)
	}
	assert.Equal(t, "Neon", GetTheme("missing").Name)
}

func TestKeyMap_HelpCoversEveryGroup(t *testing.T) {
	keys := DefaultKeyMap()
	groups := keys.FullHelp()
	assert.Len(t, groups, len(helpSectionTitles))
	for _, group := range groups {
		for _, binding := range group {
			assert.NotEmpty(t, binding.Help().Key)
			assert.NotEmpty(t, binding.Help().Desc)
		}
	}
}

func TestStyles_HeadingsUseThemeColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		st := th.Styles()
		assert.Equal(t, lipgloss.Color(th.Accent), st.Title.GetForeground(), name)
		assert.Equal(t, lipgloss.Color(th.Create), st.CreateTitle.GetForeground(), name)
		assert.Equal(t, lipgloss.Color(th.Faint), st.FaintText.GetForeground(), name)
	}
}
