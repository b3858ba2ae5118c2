package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wastelookup/internal/ui/input/types"
)

// SearchMode edits the query. The text survives focus changes.
type SearchMode struct {
	textInput *textinput.Model
	keys      types.KeyMap
}

func NewSearchMode(ti *textinput.Model, keys types.KeyMap) *SearchMode {
	return &SearchMode{textInput: ti, keys: keys}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Submit):
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.SubmitTextAction{Text: text}}, true

	case key.Matches(msg, m.keys.Next), msg.Type == tea.KeyDown, msg.Type == tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFavorites}}, true
	}

	// Let the main handler update the text input
	return nil, false
}
