package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const commandTimeout = 30 * time.Second

// Runner executes the folio binary for e2e tests
type Runner struct {
	t       *testing.T
	workDir string
	env     []string
}

// NewRunner creates a runner with an isolated working directory and config
// home, so theme state never leaks between tests
func NewRunner(t *testing.T) *Runner {
	t.Helper()

	if binaryPath() == "" {
		t.Skip("folio binary not available, set FOLIO_BIN to run e2e tests")
	}

	workDir := t.TempDir()

	return &Runner{
		t:       t,
		workDir: workDir,
		env: append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(workDir, "config"),
			"HOME="+workDir,
		),
	}
}

// binaryPath resolves the folio binary from FOLIO_BIN or PATH
func binaryPath() string {
	if bin := os.Getenv("FOLIO_BIN"); bin != "" {
		return bin
	}

	if bin, err := exec.LookPath("folio"); err == nil {
		return bin
	}

	return ""
}

// WriteConfig places a folio.yaml in the working directory
func (r *Runner) WriteConfig(content string) {
	r.t.Helper()

	if err := os.WriteFile(filepath.Join(r.workDir, "folio.yaml"), []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write config: %v", err)
	}
}

// WriteFile places a file relative to the working directory
func (r *Runner) WriteFile(path, content string) {
	r.t.Helper()

	fullPath := filepath.Join(r.workDir, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		r.t.Fatalf("failed to create dir: %v", err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write file: %v", err)
	}
}

// Run executes folio with the given args and returns stdout, stderr and the
// exit code
func (r *Runner) Run(args ...string) (string, string, int) {
	r.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binaryPath(), args...)
	cmd.Dir = r.workDir
	cmd.Env = r.env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			r.t.Fatalf("failed to run folio %v: %v", args, err)
		}
	}

	return stdout.String(), stderr.String(), exitCode
}

// ThemeStatePath returns where the isolated run persists its theme
func (r *Runner) ThemeStatePath() string {
	return filepath.Join(r.workDir, "config", "folio", "theme.json")
}
