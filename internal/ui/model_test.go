package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastelookup/internal/catalog"
	"wastelookup/internal/config"
	"wastelookup/internal/eventbus"
	"wastelookup/internal/favorites"
	"wastelookup/internal/storage"
	inputtypes "wastelookup/internal/ui/input/types"
	"wastelookup/internal/ui/views"
)

const catalogJSON = `[
	{"title":"Pizza box","body":"&lt;p&gt;Place in the &lt;strong&gt;Green Bin&lt;/strong&gt;&lt;/p&gt;","keywords":"takeout pizza box"},
	{"title":"Paint","body":"&lt;p&gt;Take to a depot&lt;/p&gt;","keywords":"paint hazardous","category":"HHW"},
	{"title":"Coffee cup","body":"&lt;p&gt;Garbage&lt;/p&gt;","keywords":"takeout coffee cup"}
]`

type stubFetcher struct {
	body string
	err  error
}

func (f stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

type failingStore struct {
	*storage.MemoryStore
}

func (s failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

type harness struct {
	model  *Model
	opened []string
}

func newHarness(t *testing.T, fetcher catalog.Fetcher, kv storage.Store) *harness {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DebounceMillis = 1

	h := &harness{}
	ctx := context.Background()
	h.model = NewModel(ctx, nil, cfg,
		catalog.NewStore(fetcher, "http://catalog.test"),
		favorites.Load(ctx, kv),
		WithPager(func(title, content string) tea.Cmd {
			h.opened = append(h.opened, content)
			return nil
		}),
	)
	h.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func newLoadedHarness(t *testing.T, kv storage.Store) *harness {
	t.Helper()
	h := newHarness(t, stubFetcher{body: catalogJSON}, kv)
	h.load()
	return h
}

func (h *harness) load() {
	h.model.Update(h.model.loadCatalog()())
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) press(t tea.KeyType) tea.Cmd {
	_, cmd := h.model.Update(tea.KeyMsg{Type: t})
	return cmd
}

func (h *harness) space() {
	h.model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (h *harness) resultTitles() []string {
	titles := []string{}
	for _, e := range h.model.results {
		titles = append(titles, e.Title)
	}
	return titles
}

func TestModel_LoadingThenLoaded(t *testing.T) {
	t.Parallel()

	h := newHarness(t, stubFetcher{body: catalogJSON}, storage.NewMemoryStore())
	assert.Contains(t, h.model.View(), views.MsgLoading)

	h.load()

	view := h.model.View()
	assert.NotContains(t, view, views.MsgLoading)
	assert.NotContains(t, view, views.MsgNoResults, "no search attempted yet")
	assert.Contains(t, view, views.MsgNoFavorites)
	assert.Contains(t, view, "3 items")
}

func TestModel_LoadFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, stubFetcher{err: errors.New("offline")}, storage.NewMemoryStore())
	h.load()

	h.typeText("zzz")
	h.press(tea.KeyEnter)

	view := h.model.View()
	assert.Contains(t, view, views.MsgLoadFailed)
	assert.NotContains(t, view, views.MsgNoResults)
	assert.Empty(t, h.model.results)
}

func TestModel_SubmitSearch(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("takeout")
	h.press(tea.KeyEnter)

	assert.Equal(t, []string{"Pizza box", "Coffee cup"}, h.resultTitles())
	view := h.model.View()
	assert.Contains(t, view, "☆ Pizza box")
	assert.Contains(t, view, "Green Bin")
}

func TestModel_NoResultsMessage(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("zzz")
	h.press(tea.KeyEnter)

	assert.Contains(t, h.model.View(), views.MsgNoResults)
}

func TestModel_KeystrokeSchedulesDebouncedSearch(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("pa")

	assert.Equal(t, "pa", h.model.inputHandler.Query())
	assert.True(t, h.model.search.Pending())
	assert.Empty(t, h.model.results, "filter waits for the debounce window")
}

func TestModel_DebounceRunsLatestOnly(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())

	first := h.model.processAction(inputtypes.UpdateTextAction{Text: "coffee"})
	second := h.model.processAction(inputtypes.UpdateTextAction{Text: "paint"})
	require.NotNil(t, first)
	require.NotNil(t, second)

	h.model.Update(first())
	assert.Empty(t, h.model.results, "superseded tick is ignored")

	h.model.Update(second())
	assert.Equal(t, []string{"Paint"}, h.resultTitles())
}

func TestModel_SubmitCancelsPendingDebounce(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())

	tick := h.model.processAction(inputtypes.UpdateTextAction{Text: "coffee"})
	h.model.processAction(inputtypes.SubmitTextAction{Text: "paint"})
	h.model.Update(tick())

	assert.Equal(t, []string{"Paint"}, h.resultTitles())
}

func TestModel_TypingBeforeLoadShowsResultsAfterLoad(t *testing.T) {
	t.Parallel()

	h := newHarness(t, stubFetcher{body: catalogJSON}, storage.NewMemoryStore())
	tick := h.model.processAction(inputtypes.UpdateTextAction{Text: "paint"})
	h.model.Update(tick())
	assert.Empty(t, h.model.results)

	h.load()

	assert.Equal(t, []string{"Paint"}, h.resultTitles())
}

func TestModel_ToggleFavoriteFromResults(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemoryStore()
	h := newLoadedHarness(t, kv)
	h.typeText("takeout")
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)
	require.Equal(t, inputtypes.ModeResults, h.model.inputHandler.CurrentMode())

	h.space()

	assert.True(t, h.model.favorites.Contains("Pizza box"))
	view := h.model.View()
	assert.Contains(t, view, "★ Pizza box")
	assert.NotContains(t, view, views.MsgNoFavorites)

	raw, ok, err := kv.Get(context.Background(), favorites.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"title":"Pizza box"`)

	// toggling the same row again removes it, including at index 0
	h.space()
	assert.False(t, h.model.favorites.Contains("Pizza box"))
	assert.Contains(t, h.model.View(), views.MsgNoFavorites)
}

func TestModel_ToggleFromFavoritesList(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("takeout")
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)
	h.space()
	h.press(tea.KeyDown)
	h.space()
	require.Equal(t, 2, h.model.favorites.Collection().Len())

	h.press(tea.KeyTab)
	require.Equal(t, inputtypes.ModeFavorites, h.model.inputHandler.CurrentMode())
	h.press(tea.KeyDown)
	h.space()

	favs := h.model.favorites.Collection()
	assert.Equal(t, 1, favs.Len())
	assert.True(t, favs.Contains("Pizza box"))
	assert.Equal(t, 0, h.model.state.Favorites.Index, "cursor clamps after removal")
}

func TestModel_ToggleWriteFailure(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, failingStore{storage.NewMemoryStore()})
	h.typeText("paint")
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)

	h.space()

	assert.False(t, h.model.favorites.Contains("Paint"))
	assert.True(t, h.model.state.StatusIsError)
	assert.Contains(t, h.model.View(), "Could not save favourites: write favourites: disk full")

	h.model.Update(clearStatusMsg{id: h.model.statusID})
	assert.Empty(t, h.model.state.StatusMessage)
}

func TestModel_StaleStatusClearIsIgnored(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.model.setStatus("first", false)
	stale := h.model.statusID
	h.model.setStatus("second", false)

	h.model.Update(clearStatusMsg{id: stale})
	assert.Equal(t, "second", h.model.state.StatusMessage)
}

func TestModel_OpenEntry(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("paint")
	h.press(tea.KeyEnter)
	h.press(tea.KeyTab)

	h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})

	require.Len(t, h.opened, 1)
	assert.Contains(t, h.opened[0], "# Paint")
	assert.Contains(t, h.opened[0], "Category: HHW")
	assert.Contains(t, h.opened[0], "Take to a depot")
}

func TestModel_PagerErrorShowsStatus(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.model.Update(pagerClosedMsg{title: "Paint", err: errors.New("no tty")})

	assert.True(t, h.model.state.StatusIsError)
	assert.Contains(t, h.model.state.StatusMessage, "no tty")
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.typeText("takeout")
	h.press(tea.KeyEnter)
	h.press(tea.KeyDown)
	require.Equal(t, inputtypes.ModeResults, h.model.inputHandler.CurrentMode())

	h.press(tea.KeyDown)
	assert.Equal(t, 1, h.model.state.Results.Index)
	h.press(tea.KeyDown)
	assert.Equal(t, 1, h.model.state.Results.Index, "stops at the last row")

	h.press(tea.KeyUp)
	h.press(tea.KeyUp)
	assert.Equal(t, inputtypes.ModeSearch, h.model.inputHandler.CurrentMode())
	assert.Equal(t, "takeout", h.model.inputHandler.Query())
}

func TestModel_ToggleHelp(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	h.press(tea.KeyTab)
	before := h.model.state.ResultsHeight

	h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.True(t, h.model.state.ShowHelp)
	assert.True(t, h.model.help.ShowAll)
	assert.Less(t, h.model.state.ResultsHeight, before, "full help takes space from the lists")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())

	// q is text while typing
	h.typeText("q")
	assert.Equal(t, "q", h.model.inputHandler.Query())

	h.press(tea.KeyTab)
	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_EventMsgSetsStatus(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	_, cmd := h.model.Update(EventMsg{Event: eventbus.FavoritesChangedEvent{Title: "Paint", Favorited: true, Count: 1}})

	assert.NotNil(t, cmd)
	assert.Equal(t, "Added Paint to favourites", h.model.state.StatusMessage)
}

func TestModel_ReadyMarker(t *testing.T) {
	t.Parallel()

	h := newLoadedHarness(t, storage.NewMemoryStore())
	assert.NotContains(t, h.model.View(), ReadyMarker)

	WithReadyMarker(true)(h.model)
	assert.Contains(t, h.model.View(), ReadyMarker)
}
