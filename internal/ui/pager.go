package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"wastelookup/internal/domain"
	"wastelookup/internal/render"
)

// PagerFunc returns a command that shows content full screen and reports
// back with a pagerClosedMsg
type PagerFunc func(title, content string) tea.Cmd

// OvPager shows content in the ov pager. Bubble Tea releases the terminal
// while ov runs and restores it afterwards.
func OvPager(title, content string) tea.Cmd {
	return tea.Exec(&ovCommand{content: content}, func(err error) tea.Msg {
		return pagerClosedMsg{title: title, err: err}
	})
}

// ovCommand runs oviewer as a tea.ExecCommand. ov opens the terminal itself
// so the stdio setters are no-ops.
type ovCommand struct {
	content string
}

func (c *ovCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (c *ovCommand) SetStdin(io.Reader)  {}
func (c *ovCommand) SetStdout(io.Writer) {}
func (c *ovCommand) SetStderr(io.Writer) {}

// entryDocument builds the pager text for an entry
func entryDocument(r *render.Renderer, entry domain.CatalogEntry) string {
	var doc strings.Builder

	doc.WriteString(fmt.Sprintf("# %s\n", entry.Title))
	if entry.Category != "" {
		doc.WriteString(fmt.Sprintf("\nCategory: %s\n", entry.Category))
	}
	if body := r.Render(entry.Body); body != "" {
		doc.WriteString("\n")
		doc.WriteString(body)
		doc.WriteString("\n")
	}

	return doc.String()
}
