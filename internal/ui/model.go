package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wastelookup/internal/catalog"
	"wastelookup/internal/config"
	"wastelookup/internal/domain"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/favorites"
	"wastelookup/internal/render"
	"wastelookup/internal/search"
	"wastelookup/internal/ui/handlers"
	"wastelookup/internal/ui/input"
	inputtypes "wastelookup/internal/ui/input/types"
	"wastelookup/internal/ui/state"
	"wastelookup/internal/ui/views"
)

// ReadyMarker is printed with every frame when the e2e readiness marker is
// enabled
const ReadyMarker = "__READY__"

// statusTimeout is how long a status bar message stays up
const statusTimeout = 4 * time.Second

// chromeLines is the number of lines the view uses besides the two lists
// and the help bar: header, search bar, spacing, the favourites heading,
// scroll indicators, status line and container padding.
const chromeLines = 15

// Option configures a Model
type Option func(*Model)

// WithPager replaces the ov pager, mostly for tests
func WithPager(p PagerFunc) Option {
	return func(m *Model) {
		m.pager = p
	}
}

// WithReadyMarker appends ReadyMarker to the rendered view
func WithReadyMarker(enabled bool) Option {
	return func(m *Model) {
		m.readyMarker = enabled
	}
}

// Model represents the UI state
type Model struct {
	ctx   context.Context
	state *state.AppState // centralized state

	catalog   *catalog.Store
	search    *search.Service
	favorites *favorites.Store

	load      domain.LoadState
	results   []domain.CatalogEntry
	summaries map[string]string // title -> plain body, filled lazily

	help         help.Model
	renderer     *views.Renderer
	body         *render.Renderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	pager        PagerFunc

	statusID    int
	readyMarker bool
}

// NewModel creates a new UI model. The catalog is loaded by Init.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, cat *catalog.Store, favs *favorites.Store, opts ...Option) *Model {
	appState := state.NewAppState()
	appState.ShowHelp = cfg.UISettings.ShowHelp

	svc := search.NewService(cfg.Debounce())
	svc.SetEventBus(bus)

	m := &Model{
		ctx:          ctx,
		state:        appState,
		catalog:      cat,
		search:       svc,
		favorites:    favs,
		summaries:    make(map[string]string),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		body:         render.New(),
		eventHandler: handlers.NewEventHandler(appState),
		inputHandler: input.New(),
		pager:        OvPager,
	}
	m.help.ShowAll = appState.ShowHelp

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init starts the catalog load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputHandler.Init(), m.loadCatalog())
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg{state: m.catalog.Load(m.ctx)}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.relayout(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Create context for input handler
		ctx := m.inputContext()

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case catalogLoadedMsg:
		m.load = msg.state
		if !msg.state.Failed() {
			m.search.SetEntries(msg.state.Entries)
			m.syncResults()
		}
		return m, nil

	case debounceMsg:
		if m.search.Fire(msg.ticket) {
			m.syncResults()
		}
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.state.ClearStatus()
		}
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager for %s failed: %v", msg.title, msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.title, msg.err), true)
		}
		return m, nil

	case EventMsg:
		if m.eventHandler.HandleEvent(msg.Event) {
			return m, m.scheduleStatusClear()
		}
		return m, nil
	}

	// Cursor blink and other non-keyboard messages
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		ticket := m.search.Input(a.Text)
		return tea.Tick(m.search.Debounce(), func(time.Time) tea.Msg {
			return debounceMsg{ticket: ticket}
		})

	case inputtypes.SubmitTextAction:
		m.search.Submit(a.Text)
		m.syncResults()

	case inputtypes.ToggleFavoriteAction:
		return m.toggleFavorite(a.Title)

	case inputtypes.OpenEntryAction:
		entry, ok := m.entryByTitle(a.Title)
		if !ok {
			return nil
		}
		return m.pager(entry.Title, entryDocument(m.body, entry))

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.help.ShowAll = m.state.ShowHelp
		m.relayout(m.state.Width, m.state.Height)

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeResults:
		m.state.Results.Move(direction, len(m.results), m.state.ResultsHeight)
	case inputtypes.ModeFavorites:
		m.state.Favorites.Move(direction, m.favorites.Collection().Len(), m.state.FavoriteHeight)
	}
}

func (m *Model) toggleFavorite(title string) tea.Cmd {
	entry, ok := m.entryByTitle(title)
	if !ok {
		return nil
	}

	coll, err := m.favorites.Toggle(m.ctx, entry)
	if err != nil {
		log.Printf("Failed to save favourites: %v", err)
		return m.setStatus(fmt.Sprintf("Could not save favourites: %v", err), true)
	}

	m.state.Favorites.Clamp(coll.Len(), m.state.FavoriteHeight)
	return nil
}

// entryByTitle finds the entry in the focused list, then anywhere on screen
func (m *Model) entryByTitle(title string) (domain.CatalogEntry, bool) {
	favs := m.favorites.Collection()

	lists := [][]domain.CatalogEntry{m.results, favs.Entries()}
	if m.inputHandler.CurrentMode() == inputtypes.ModeFavorites {
		lists[0], lists[1] = lists[1], lists[0]
	}
	for _, list := range lists {
		for _, e := range list {
			if e.Title == title {
				return e, true
			}
		}
	}
	return domain.CatalogEntry{}, false
}

// syncResults picks up a completed search. A new result list starts at the
// top.
func (m *Model) syncResults() {
	m.results = m.search.State().Matches
	m.state.Results.Reset()
	m.state.Results.Clamp(len(m.results), m.state.ResultsHeight)
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError)
	return m.scheduleStatusClear()
}

func (m *Model) scheduleStatusClear() tea.Cmd {
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *Model) relayout(width, height int) {
	helpLines := 0
	if m.inputHandler != nil {
		helpLines = lipgloss.Height(m.help.View(m.inputHandler.Keys()))
	}
	m.state.Layout(width, height, chromeLines+helpLines)
	m.state.Results.Clamp(len(m.results), m.state.ResultsHeight)
	m.state.Favorites.Clamp(m.favorites.Collection().Len(), m.state.FavoriteHeight)
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Mode:      m.inputHandler.CurrentMode(),
		State:     m.state,
		Results:   m.results,
		Favorites: m.favorites.Collection().Entries(),
	}
}

// View renders the UI
func (m *Model) View() string {
	out := m.renderer.Render(m.viewState())
	if m.readyMarker {
		out += "\n" + ReadyMarker
	}
	return out
}

func (m *Model) viewState() views.ViewState {
	favs := m.favorites.Collection()

	focus := views.FocusSearch
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeResults:
		focus = views.FocusResults
	case inputtypes.ModeFavorites:
		focus = views.FocusFavorites
	}

	return views.ViewState{
		Width:           m.state.Width,
		Height:          m.state.Height,
		Focus:           focus,
		SearchInput:     m.inputHandler.TextInput().View(),
		Loading:         m.load.Pending(),
		LoadFailed:      m.load.Failed(),
		EntryCount:      len(m.load.Entries),
		Results:         m.rows(m.results, favs),
		ResultIndex:     m.state.Results.Index,
		ResultOffset:    m.state.Results.Offset,
		ResultsHeight:   m.state.ResultsHeight,
		ShowNoResults:   m.search.ShowNoResults(m.load.Failed()),
		Favorites:       m.rows(favs.Entries(), favs),
		FavoriteIndex:   m.state.Favorites.Index,
		FavoriteOffset:  m.state.Favorites.Offset,
		FavoritesHeight: m.state.FavoriteHeight,
		StatusMessage:   m.state.StatusMessage,
		StatusIsError:   m.state.StatusIsError,
		HelpView:        m.help.View(m.inputHandler.Keys()),
	}
}

// rows maps entries to list rows. The star is derived from favourites
// membership on every render.
func (m *Model) rows(entries []domain.CatalogEntry, favs favorites.Collection) []views.Row {
	rows := make([]views.Row, len(entries))
	for i, e := range entries {
		rows[i] = views.Row{
			Title:     e.Title,
			Summary:   m.summary(e),
			Favorited: favs.Contains(e.Title),
		}
	}
	return rows
}

func (m *Model) summary(e domain.CatalogEntry) string {
	if s, ok := m.summaries[e.Title]; ok {
		return s
	}
	s := m.body.Plain(e.Body)
	m.summaries[e.Title] = s
	return s
}
