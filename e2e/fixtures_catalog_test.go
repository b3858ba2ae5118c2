//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
)

// DefaultCatalog is a small catalog in the shape the real endpoint serves
const DefaultCatalog = `[
	{"title":"Paint (latex)","body":"&lt;p&gt;Take to a &lt;b&gt;Drop-off Depot&lt;/b&gt;.&lt;/p&gt;","keywords":"paint latex hazardous","category":"HHW"},
	{"title":"Pizza box","body":"&lt;p&gt;Place in the Green Bin.&lt;/p&gt;","keywords":"takeout pizza box cardboard","category":"Green Bin"},
	{"title":"Takeout coffee cup","body":"&lt;p&gt;Place in the Garbage.&lt;/p&gt;","keywords":"takeout coffee cup","category":"Garbage"}
]`

// CatalogServer serves a fixed catalog body and counts requests
type CatalogServer struct {
	*httptest.Server
	hits atomic.Int32
}

// Hits returns the number of catalog requests served
func (c *CatalogServer) Hits() int {
	return int(c.hits.Load())
}

// CatalogOption configures the catalog server
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	status int
	body   string
}

// WithStatus makes the server answer with status
func WithStatus(status int) CatalogOption {
	return func(opts *catalogOptions) {
		opts.status = status
	}
}

// WithBody replaces the catalog JSON
func WithBody(body string) CatalogOption {
	return func(opts *catalogOptions) {
		opts.body = body
	}
}

// CreateTestWorkspace creates a temporary home for config and favourites
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// StartCatalog starts the catalog server the app is pointed at
func (tf *TUITestFramework) StartCatalog(options ...CatalogOption) *CatalogServer {
	opts := &catalogOptions{status: http.StatusOK, body: DefaultCatalog}
	for _, opt := range options {
		opt(opts)
	}

	c := &CatalogServer{}
	c.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(opts.status)
		_, _ = w.Write([]byte(opts.body))
	}))
	tf.catalog = c
	return c
}

// DataDir is where the app keeps favourites and its log
func (tf *TUITestFramework) DataDir() string {
	return filepath.Join(tf.workspace, "data")
}

// ConfigPath is the config file the app is started with
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// workspaceArgs points the app at the workspace and the catalog server
func (tf *TUITestFramework) workspaceArgs() []string {
	if tf.workspace == "" {
		return nil
	}
	args := []string{"--data-dir", tf.DataDir(), "--config", tf.ConfigPath()}
	if tf.catalog != nil {
		args = append(args, "--url", tf.catalog.URL)
	}
	return args
}

// StopApp terminates the app but keeps the workspace and catalog so it can be
// started again. Captured output is discarded.
func (tf *TUITestFramework) StopApp() {
	// Closing the PTY first delivers SIGHUP to the child
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	tf.output.Reset()
}

// ReadFavorites returns the raw persisted favourites file
func (tf *TUITestFramework) ReadFavorites() (string, error) {
	data, err := os.ReadFile(filepath.Join(tf.DataDir(), "favourites.json"))
	return string(data), err
}
