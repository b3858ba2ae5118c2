// Package render turns the catalog's HTML-escaped body text into text that
// reads well in a terminal.
package render

import (
	"html"
	"log"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"
)

var (
	blankLines = regexp.MustCompile(`\n{3,}`)
	spaces     = regexp.MustCompile(`\s+`)
)

// Renderer converts entry bodies. It is safe for concurrent use.
type Renderer struct {
	conv   *converter.Converter
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

// Render returns the body as Markdown. The body arrives HTML-escaped, so it
// is unescaped first and then sanitised before conversion.
func (r *Renderer) Render(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}

	clean := r.ugc.Sanitize(html.UnescapeString(body))

	md, err := r.conv.ConvertString(clean)
	if err != nil {
		log.Printf("Falling back to plain text body: %v", err)
		return r.plain(clean)
	}

	md = blankLines.ReplaceAllString(strings.TrimSpace(md), "\n\n")
	return md
}

// Plain returns a single-line, tag-free summary of the body for list rows.
func (r *Renderer) Plain(body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return r.plain(html.UnescapeString(body))
}

func (r *Renderer) plain(markup string) string {
	// Block-level closers would otherwise glue adjacent words together
	markup = strings.NewReplacer("</li>", " </li>", "</p>", " </p>", "<br>", " ", "<br/>", " ", "<br />", " ").Replace(markup)
	text := html.UnescapeString(r.strict.Sanitize(markup))
	return strings.TrimSpace(spaces.ReplaceAllString(text, " "))
}
