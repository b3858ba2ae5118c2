package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wastelookup/internal/ui/input/modes"
	"wastelookup/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Search bar, shared with the view
	keys        types.KeyMap
}

// New creates a handler focused on the search bar
func New() *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = "Search ..."
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        types.DefaultKeyMap(),
	}

	// Register all mode handlers
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput, h.keys)
	h.modes[types.ModeResults] = modes.NewResultsMode(h.keys)
	h.modes[types.ModeFavorites] = modes.NewFavoritesMode(h.keys)

	return h
}

// HandleKey routes the key to the current mode and returns the resulting
// actions. Mode changes are applied here and not returned.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed {
		if h.currentMode != types.ModeSearch {
			return nil, nil
		}
		return h.updateText(msg)
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.currentMode == types.ModeSearch {
			cmd = textinput.Blink
		}
	}

	return allActions, cmd
}

// updateText forwards the key to the search bar. An UpdateTextAction is only
// emitted when the value actually changed so cursor movement does not
// schedule a search.
func (h *Handler) updateText(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)

	after := h.textInput.Value()
	if after == before {
		return nil, cmd
	}
	return []types.Action{types.UpdateTextAction{Text: after}}, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the focused mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// Keys returns the bindings, for the help bar
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

// TextInput returns the search bar model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Query returns the text currently in the search bar
func (h *Handler) Query() string {
	return h.textInput.Value()
}

// Update handles non-keyboard messages for the search bar (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
