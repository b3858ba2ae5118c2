package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wastelookup/internal/ui/input/types"
)

// ListMode handles a focused list of entries: the search results or the
// favourites.
type ListMode struct {
	mode types.Mode
	keys types.KeyMap
}

func NewResultsMode(keys types.KeyMap) *ListMode {
	return &ListMode{mode: types.ModeResults, keys: keys}
}

func NewFavoritesMode(keys types.KeyMap) *ListMode {
	return &ListMode{mode: types.ModeFavorites, keys: keys}
}

func (m *ListMode) Name() string {
	return m.mode.String()
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Up):
		// Leave the result list for the search bar from the first row
		if m.mode == types.ModeResults && ctx.CurrentIndex() <= 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return navigate("up"), true

	case key.Matches(msg, m.keys.Down):
		return navigate("down"), true

	case key.Matches(msg, m.keys.PageUp):
		return navigate("pageup"), true

	case key.Matches(msg, m.keys.PageDown):
		return navigate("pagedown"), true

	case key.Matches(msg, m.keys.Home):
		return navigate("home"), true

	case key.Matches(msg, m.keys.End):
		return navigate("end"), true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.ChangeModeAction{Mode: m.mode.Next()}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.ChangeModeAction{Mode: m.mode.Prev()}}, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Toggle):
		if title := ctx.CurrentTitle(); title != "" {
			return []types.Action{types.ToggleFavoriteAction{Title: title}}, true
		}

	case key.Matches(msg, m.keys.Open):
		if title := ctx.CurrentTitle(); title != "" {
			return []types.Action{types.OpenEntryAction{Title: title}}, true
		}
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
