package updateversion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExampleRun stamps a release version into a manifest written to a temporary
// directory and prints the manifest afterwards.
func ExampleRun() {
	tmpDir, err := os.MkdirTemp("", "updateversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	manifest := filepath.Join(tmpDir, "Cargo.toml")
	initialContent := "[package]\nname = \"imgdiff\"\nversion = \"0.0.0\"\n"
	if err := os.WriteFile(manifest, []byte(initialContent), 0644); err != nil {
		fmt.Println("failed to write manifest:", err)
		return
	}

	meta, err := Run(Options{ManifestPath: manifest, Version: "1.2.3", Stdout: io.Discard})
	if err != nil {
		fmt.Println("error updating version:", err)
		return
	}

	newContent, err := os.ReadFile(manifest)
	if err != nil {
		fmt.Println("failed to read manifest:", err)
		return
	}
	fmt.Printf("%s", newContent)
	fmt.Println("replacements:", meta.Replacements)

	// Output:
	// [package]
	// name = "imgdiff"
	// version = "1.2.3"
	// replacements: 1
}

// ExampleDryRun counts the placeholders without touching the manifest.
func ExampleDryRun() {
	tmpDir, err := os.MkdirTemp("", "updateversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	manifest := filepath.Join(tmpDir, "Cargo.toml")
	content := "[package]\nversion = \"0.0.0\"\n\n[workspace.package]\nversion = \"0.0.0\"\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		fmt.Println("failed to write manifest:", err)
		return
	}

	meta, err := DryRun(Options{ManifestPath: manifest, Version: "2.0.0", Stdout: io.Discard})
	if err != nil {
		fmt.Println("dry run failed:", err)
		return
	}
	fmt.Println("would replace:", meta.Replacements)

	// Output:
	// would replace: 2
}
