package dropdown

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestActivateKeysMatchEnterAndSpace(t *testing.T) {
	km := DefaultKeyMap()
	assert.Equal(t, []string{"enter", " "}, km.Activate.Keys())
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Activate))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace}, km.Activate))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, km.Activate))
}
