package views_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wastelookup/internal/ui/views"
)

func baseState() views.ViewState {
	return views.ViewState{
		Width:           100,
		Height:          40,
		ResultsHeight:   10,
		FavoritesHeight: 5,
		EntryCount:      3,
	}
}

func TestRender_Header(t *testing.T) {
	t.Parallel()

	out := views.NewRenderer().Render(baseState())

	assert.Contains(t, out, views.AppTitle)
	assert.Contains(t, out, views.FavoritesHeading)
	assert.Contains(t, out, "3 items")
}

func TestRender_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*views.ViewState)
		want    []string
		notWant []string
	}{
		{
			name:    "loading",
			mutate:  func(s *views.ViewState) { s.Loading = true },
			want:    []string{views.MsgLoading},
			notWant: []string{views.MsgLoadFailed, views.MsgNoResults},
		},
		{
			name:    "load failed",
			mutate:  func(s *views.ViewState) { s.LoadFailed = true },
			want:    []string{views.MsgLoadFailed},
			notWant: []string{views.MsgLoading, views.MsgNoResults},
		},
		{
			name:   "no results",
			mutate: func(s *views.ViewState) { s.ShowNoResults = true },
			want:   []string{views.MsgNoResults},
		},
		{
			name:    "initial",
			mutate:  func(s *views.ViewState) {},
			want:    []string{views.MsgNoFavorites},
			notWant: []string{views.MsgNoResults, views.MsgLoadFailed},
		},
		{
			name: "favourites present",
			mutate: func(s *views.ViewState) {
				s.Favorites = []views.Row{{Title: "Paint", Favorited: true}}
			},
			want:    []string{"★ Paint"},
			notWant: []string{views.MsgNoFavorites},
		},
		{
			name: "status error",
			mutate: func(s *views.ViewState) {
				s.StatusMessage = "Could not save favourites: disk full"
				s.StatusIsError = true
			},
			want: []string{"Could not save favourites: disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := baseState()
			tt.mutate(&s)
			out := views.NewRenderer().Render(s)

			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestRender_StarsFollowMembership(t *testing.T) {
	t.Parallel()

	s := baseState()
	s.Results = []views.Row{
		{Title: "Pizza box", Summary: "Blue bin", Favorited: true},
		{Title: "Battery", Summary: "Depot"},
	}
	out := views.NewRenderer().Render(s)

	assert.Contains(t, out, "★ Pizza box")
	assert.Contains(t, out, "☆ Battery")
	assert.Contains(t, out, "Blue bin")
}

func TestRender_ScrollIndicators(t *testing.T) {
	t.Parallel()

	s := baseState()
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		s.Results = append(s.Results, views.Row{Title: title})
	}
	s.ResultsHeight = 2
	s.ResultOffset = 2
	s.ResultIndex = 2
	s.Focus = views.FocusResults

	out := views.NewRenderer().Render(s)

	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "↓ 2 more below ↓")
	assert.Contains(t, out, "☆ c")
	assert.NotContains(t, out, "☆ a")
	assert.NotContains(t, out, "☆ e")
}

func TestRender_HelpAtBottom(t *testing.T) {
	t.Parallel()

	s := baseState()
	s.HelpView = "? more"
	out := views.NewRenderer().Render(s)

	lines := strings.Split(strings.TrimRight(out, " \n"), "\n")
	assert.Contains(t, lines[len(lines)-1], "? more")
}

func TestRow_Star(t *testing.T) {
	t.Parallel()

	assert.Equal(t, views.StarFilled, views.Row{Favorited: true}.Star())
	assert.Equal(t, views.StarEmpty, views.Row{}.Star())
}
