//go:build e2e && unix

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20        // 1 MiB of scrollback
var binPath = "wastelookup_e2e" // unified binary path

// Terminal size the app is started with
const (
	termRows = 40
	termCols = 120
)

// Key constants for better readability
const (
	KeyEnter    = "\r"
	KeyCtrlC    = "\x03"
	KeyTab      = "\t"
	KeyShiftTab = "\x1b[Z"
	KeySpace    = " "
	KeyQuit     = "q"
	KeyHelp     = "?"
)

// ANSI escape sequences stripped before plain-text matching: CSI, OSC,
// charset selection, keypad modes and carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// ring keeps the last ringSize bytes written to it
type ring struct {
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func newRing() *ring {
	return &ring{buf: make([]byte, ringSize)}
}

func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range p {
		r.buf[r.head] = b
		r.head = (r.head + 1) % len(r.buf)
		if r.head == 0 {
			r.full = true
		}
	}
	return len(p), nil
}

func (r *ring) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return string(r.buf[:r.head])
	}
	return string(r.buf[r.head:]) + string(r.buf[:r.head])
}

func (r *ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.full = false
}

// TUITestFramework drives the built binary inside a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	catalog   *CatalogServer
	output    *ring
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t, output: newRing()}
}

// StartApp launches wastelookup with given arguments in a PTY. The catalog
// URL and the workspace's data and config paths are appended.
func (tf *TUITestFramework) StartApp(args ...string) error {
	args = append(args, tf.workspaceArgs()...)
	tf.cmd = exec.Command(binPath, args...)

	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace, // isolate $HOME
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
		"WASTELOOKUP_E2E_TEST=1",
	)

	ptmx, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: termRows, Cols: termCols}); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("failed to size pty: %w", err)
	}

	tf.pty = ptmx
	tf.tty = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stderr = tty

	if err := tf.cmd.Start(); err != nil {
		ptmx.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	// Capture until the PTY is closed
	go func() { _, _ = io.Copy(tf.output, ptmx) }()

	return nil
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// SendCtrlC sends Ctrl+C to terminate the application
func (tf *TUITestFramework) SendCtrlC() error {
	tf.t.Helper()
	return tf.SendKeys(KeyCtrlC)
}

// Type sends text one keystroke at a time, like a user typing
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Tab moves focus to the next pane
func (tf *TUITestFramework) Tab() error {
	tf.t.Helper()
	return tf.SendKeys(KeyTab)
}

// ToggleFavorite sends space to toggle the selected row
func (tf *TUITestFramework) ToggleFavorite() error {
	tf.t.Helper()
	return tf.SendKeys(KeySpace)
}

// Enter sends enter key
func (tf *TUITestFramework) Enter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// Quit sends 'q'
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// Driver DSL helpers for readable test scripts

// Ready waits for the app to signal it's ready
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return strings.Contains(s, "__READY__") }, 5*time.Second)
}

// SeePlain waits briefly for plain text to appear
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// WaitForStatusMessage waits for a status bar message
func (tf *TUITestFramework) WaitForStatusMessage(message string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(message, timeout)
}

// OutputContainsPlain waits for text to appear in the output with ANSI
// sequences removed
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor polls the raw output until pred holds or timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.output.String()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// SnapshotPlain returns the captured output with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.t.Helper()
	return ansiRe.ReplaceAllString(tf.output.String(), "")
}

// DumpTailOnFail saves the last n bytes of plain output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	tf.t.Helper()
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup terminates the application and removes the workspace
func (tf *TUITestFramework) Cleanup() {
	tf.StopApp()
	if tf.catalog != nil {
		tf.catalog.Close()
		tf.catalog = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
