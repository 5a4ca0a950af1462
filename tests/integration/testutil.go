// Package integration exercises the scout CLI and the leaguepedia
// client end to end against a local stand-in for the wiki's MediaWiki
// API.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

var (
	// scoutBin is the path to the built scout binary.
	scoutBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetScoutBin sets the path to the scout binary (called from TestMain).
func SetScoutBin(path string) {
	scoutBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// FakeWiki is an in-process MediaWiki endpoint serving canned Cargo
// rows and image URLs. Rows are keyed by primary table name; the
// where clause of incoming queries is recorded but not evaluated, so
// each test loads only the rows it expects back. Limit and offset are
// honored, which makes pagination observable.
type FakeWiki struct {
	mu       sync.Mutex
	srv      *httptest.Server
	tables   map[string][]map[string]string
	images   map[string]string
	failures map[string]*wikiError
	requests []url.Values
}

// NewFakeWiki starts a fake wiki server that stops with the test.
func NewFakeWiki(t *testing.T) *FakeWiki {
	t.Helper()
	f := &FakeWiki{
		tables:   map[string][]map[string]string{},
		images:   map[string]string{},
		failures: map[string]*wikiError{},
	}
	f.srv = httptest.NewServer(f)
	t.Cleanup(f.srv.Close)
	return f
}

// URL returns the base URL of the fake endpoint.
func (f *FakeWiki) URL() string {
	return f.srv.URL
}

// SetRows replaces the rows served for a table. Column names may use
// spaces in place of underscores, as the live API does.
func (f *FakeWiki) SetRows(table string, rows ...map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table] = rows
}

// SetImage registers a file page title with its resolved URL.
func (f *FakeWiki) SetImage(title, url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[title] = url
}

// FailTable makes queries against a table return a MediaWiki error body.
func (f *FakeWiki) FailTable(table, code, info string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[table] = &wikiError{Code: code, Info: info}
}

// Requests returns the recorded query parameters for one API action,
// in arrival order.
func (f *FakeWiki) Requests(action string) []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []url.Values
	for _, params := range f.requests {
		if params.Get("action") == action {
			out = append(out, params)
		}
	}
	return out
}

func (f *FakeWiki) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	f.mu.Lock()
	f.requests = append(f.requests, params)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch params.Get("action") {
	case "cargoquery":
		f.serveCargo(w, params)
	case "query":
		f.serveImageInfo(w, params)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
	}
}

type wikiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type cargoEnvelope struct {
	CargoQuery []cargoItem `json:"cargoquery"`
	Error      *wikiError  `json:"error,omitempty"`
}

type cargoItem struct {
	Title map[string]string `json:"title"`
}

type imageEnvelope struct {
	Query struct {
		Pages map[string]imagePage `json:"pages"`
	} `json:"query"`
}

type imagePage struct {
	Title     string      `json:"title"`
	ImageInfo []imageItem `json:"imageinfo,omitempty"`
}

type imageItem struct {
	URL string `json:"url"`
}

func (f *FakeWiki) serveCargo(w http.ResponseWriter, params url.Values) {
	table := primaryTable(params.Get("tables"))

	f.mu.Lock()
	failure := f.failures[table]
	rows := f.tables[table]
	f.mu.Unlock()

	if failure != nil {
		writeJSON(w, cargoEnvelope{CargoQuery: []cargoItem{}, Error: failure})
		return
	}

	offset := atoiOr(params.Get("offset"), 0)
	limit := atoiOr(params.Get("limit"), len(rows))
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}

	items := make([]cargoItem, 0, end-offset)
	for _, row := range rows[offset:end] {
		items = append(items, cargoItem{Title: row})
	}
	writeJSON(w, cargoEnvelope{CargoQuery: items})
}

func (f *FakeWiki) serveImageInfo(w http.ResponseWriter, params url.Values) {
	pages := map[string]imagePage{}
	for i, title := range strings.Split(params.Get("titles"), "|") {
		f.mu.Lock()
		fileURL, ok := f.images[title]
		f.mu.Unlock()
		if ok {
			pages[strconv.Itoa(i+1)] = imagePage{
				Title:     title,
				ImageInfo: []imageItem{{URL: fileURL}},
			}
		} else {
			// The live API keys missing pages with negative ids.
			pages[strconv.Itoa(-(i + 1))] = imagePage{Title: title}
		}
	}
	var env imageEnvelope
	env.Query.Pages = pages
	writeJSON(w, env)
}

// primaryTable extracts the first table name from a tables parameter,
// dropping any "=alias" suffix.
func primaryTable(tables string) string {
	first, _, _ := strings.Cut(tables, ",")
	name, _, _ := strings.Cut(first, "=")
	return name
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// TestEnv provides an isolated test environment with its own config
// directory pointed at a fake wiki.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	// Env holds extra KEY=value pairs passed to scout invocations.
	Env []string
}

// NewTestEnv creates a new isolated test environment whose config
// targets the given fake wiki.
func NewTestEnv(t *testing.T, wiki *FakeWiki) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build scout: %v", buildErr)
	}
	if scoutBin == "" {
		t.Fatal("scout binary not built (scoutBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "base_url: " + wiki.URL() + "\nuser_agent: scout-integration\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
	}
}

// CmdResult holds the result of a scout command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunScout executes the scout CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunScout(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(scoutBin, allArgs...)
	cmd.Env = append(os.Environ(), e.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run scout: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunScout executes the scout CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunScout(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunScout(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("scout %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Champion mirrors the champion fields the CLI emits as JSON.
type Champion struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	Resource    string   `json:"Resource"`
	BE          *int     `json:"BE"`
	RP          *int     `json:"RP"`
	AttackRange *float64 `json:"AttackRange"`
}

// Player mirrors the player fields the CLI emits as JSON.
type Player struct {
	ID      string `json:"ID"`
	Player  string `json:"Player"`
	Country string `json:"Country"`
	Team    string `json:"Team"`
	Role    string `json:"Role"`
}

// Standing mirrors the standing fields the CLI emits as JSON.
type Standing struct {
	Team   string `json:"Team"`
	Place  *int   `json:"Place"`
	Points *int   `json:"Points"`
}
