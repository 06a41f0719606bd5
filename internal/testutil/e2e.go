// Package testutil provides test utilities and helpers for shiplog tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// shiplogBinaryPath caches the built shiplog binary path.
	shiplogBinaryPath string
	shiplogBuildOnce  sync.Once
	shiplogBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing. It strips
// real credentials from the environment and points HOME at a temp
// directory so a developer's user config never leaks into a test.
type E2EEnv struct {
	t       *testing.T
	tempDir string
	env     map[string]string
}

// CommandResult captures the result of running a shiplog command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new isolated E2E test environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{
		t:       t,
		tempDir: t.TempDir(),
		env:     make(map[string]string),
	}
	env.buildShiplog()
	return env
}

// Dir returns the working directory commands run in.
func (e *E2EEnv) Dir() string {
	return e.tempDir
}

// Setenv sets an environment variable for subsequent Run calls.
func (e *E2EEnv) Setenv(key, value string) {
	e.env[key] = value
}

// WriteFile writes a file relative to the test working directory.
func (e *E2EEnv) WriteFile(name, content string) {
	e.t.Helper()
	path := filepath.Join(e.tempDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
}

// ReadFile reads a file relative to the test working directory.
func (e *E2EEnv) ReadFile(name string) string {
	e.t.Helper()
	content, err := os.ReadFile(filepath.Join(e.tempDir, name))
	if err != nil {
		e.t.Fatalf("reading %s: %v", name, err)
	}
	return string(content)
}

func (e *E2EEnv) buildShiplog() {
	e.t.Helper()

	// Build the binary once per test session
	shiplogBuildOnce.Do(func() {
		shiplogBinaryPath, shiplogBuildErr = buildShiplogBinary()
	})

	if shiplogBuildErr != nil {
		e.t.Fatalf("building shiplog: %v", shiplogBuildErr)
	}
}

func buildShiplogBinary() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "shiplog-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "shiplog")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/shiplog")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building shiplog: %w\nOutput: %s", err, output)
	}

	return binaryPath, nil
}

// Run executes a shiplog command in the isolated environment. Stdin is
// closed, so interactive prompting is never entered.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(shiplogBinaryPath, args...)
	cmd.Dir = e.tempDir
	cmd.Env = e.buildIsolatedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}

	return result
}

func (e *E2EEnv) buildIsolatedEnv() []string {
	env := []string{
		"HOME=" + e.tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.tempDir, ".config"),
		"NO_COLOR=1",
	}

	// Standard utilities still need to resolve
	safeVars := []string{"PATH", "TERM", "LANG", "LC_ALL", "TMPDIR"}
	for _, key := range safeVars {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}

	for key, val := range e.env {
		env = append(env, key+"="+val)
	}

	return env
}
