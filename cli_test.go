package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestCLIBinaryIntegration builds the CLI into <repo>/scripts and runs it
// without --manifest, so the manifest is found relative to the executable.
func TestCLIBinaryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the CLI binary")
	}

	tmpRepo := t.TempDir()
	scriptsDir := filepath.Join(tmpRepo, "scripts")
	if err := os.MkdirAll(scriptsDir, 0755); err != nil {
		t.Fatalf("failed to create scripts directory: %v", err)
	}

	binPath := filepath.Join(scriptsDir, "update-version")
	buildCmd := exec.Command("go", "build", "-o", binPath, "./")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, out)
	}

	manifest := filepath.Join(tmpRepo, "Cargo.toml")
	initial := `[package]
name = "imgdiff"
version = "0.0.0"
authors = ["someone"]
`
	if err := os.WriteFile(manifest, []byte(initial), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	// Run from an unrelated directory: the working directory must not matter.
	cliCmd := exec.Command(binPath, "0.3.1")
	cliCmd.Dir = t.TempDir()
	var stdout, stderr bytes.Buffer
	cliCmd.Stdout = &stdout
	cliCmd.Stderr = &stderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, stdout.String(), stderr.String())
	}

	resolved, err := filepath.EvalSymlinks(manifest)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines of output, got %d:\n%s", len(lines), stdout.String())
	}
	if lines[0] != "Updating version in "+resolved {
		t.Errorf("unexpected first line %q; want manifest %s", lines[0], resolved)
	}
	if lines[1] != `  from version = "0.0.0" to version = "0.3.1"` {
		t.Errorf("unexpected second line %q", lines[1])
	}

	updated, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	want := strings.Replace(initial, `version = "0.0.0"`, `version = "0.3.1"`, 1)
	if string(updated) != want {
		t.Errorf("manifest not updated; got:\n%s", updated)
	}

	backup, err := os.ReadFile(manifest + ".bak")
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(backup) != initial {
		t.Errorf("backup does not match the original manifest; got:\n%s", backup)
	}
}

// TestCLIBinaryMissingManifest checks the exit status when ../Cargo.toml does not exist.
func TestCLIBinaryMissingManifest(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the CLI binary")
	}

	tmpRepo := t.TempDir()
	binPath := filepath.Join(tmpRepo, "bin", "update-version")
	buildCmd := exec.Command("go", "build", "-o", binPath, "./")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, out)
	}

	cliCmd := exec.Command(binPath)
	var stderr bytes.Buffer
	cliCmd.Stderr = &stderr
	err := cliCmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected a non-zero exit, got err=%v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.HasPrefix(stderr.String(), "Error:") {
		t.Errorf("expected an Error: line on stderr, got %q", stderr.String())
	}
}
