package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	AppTitle         = "Toronto Waste Lookup"
	FavoritesHeading = "Favourites"

	MsgNoResults   = `No search results, try searching items like "takeout".`
	MsgNoFavorites = "Search for an item, then press space on its ☆ to favourite."
	MsgLoadFailed  = "Sorry, we could not load the items. Please check your internet connection and refresh."
	MsgLoading     = "Loading items..."
)

// Focus identifies the region that receives keys
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusFavorites
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Focus       Focus
	SearchInput string // rendered text input
	Loading     bool
	LoadFailed  bool
	EntryCount  int

	Results       []Row
	ResultIndex   int
	ResultOffset  int
	ResultsHeight int
	ShowNoResults bool

	Favorites       []Row
	FavoriteIndex   int
	FavoriteOffset  int
	FavoritesHeight int

	StatusMessage string
	StatusIsError bool
	HelpView      string // rendered short or full help
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *EntryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewEntryRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	innerWidth := termWidth - 4 // Account for main container padding

	content.WriteString(r.renderTitleLine(state, innerWidth))
	content.WriteString("\n")
	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderResults(state, innerWidth))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Heading.Render(FavoritesHeading))
	content.WriteString("\n")
	content.WriteString(r.renderFavorites(state, innerWidth))
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString("\n")
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		// Push help to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		helpLines := strings.Count(state.HelpView, "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		if paddingNeeded := availableLines - currentLines - helpLines; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the header band with a right-aligned item count
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Header.Render(AppTitle)

	right := ""
	switch {
	case state.Loading:
		right = r.styles.Dim.Render("loading")
	case state.LoadFailed:
		right = r.styles.LoadError.Render("offline")
	default:
		right = r.styles.Dim.Render(fmt.Sprintf("%d items", state.EntryCount))
	}

	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + right
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	prompt := r.styles.SearchPrompt.Render("> ")
	if state.Focus == FocusSearch {
		prompt = r.styles.SearchFocused.Render("> ")
	}
	return prompt + state.SearchInput
}

func (r *Renderer) renderResults(state ViewState, width int) string {
	switch {
	case state.Loading:
		return r.styles.Message.Render(MsgLoading)
	case state.LoadFailed:
		return r.styles.LoadError.Render(MsgLoadFailed)
	case state.ShowNoResults:
		return r.styles.Message.Render(MsgNoResults)
	case len(state.Results) == 0:
		return ""
	}

	selected := -1
	if state.Focus == FocusResults {
		selected = state.ResultIndex
	}
	return r.entryRender.RenderList(state.Results, selected, state.ResultOffset, state.ResultsHeight, width)
}

func (r *Renderer) renderFavorites(state ViewState, width int) string {
	if len(state.Favorites) == 0 {
		return r.styles.Message.Render(MsgNoFavorites)
	}

	selected := -1
	if state.Focus == FocusFavorites {
		selected = state.FavoriteIndex
	}
	return r.entryRender.RenderList(state.Favorites, selected, state.FavoriteOffset, state.FavoritesHeight, width)
}
