package updateversion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

const (
	// DefaultVersion is both the placeholder searched for and the version used
	// when none is supplied.
	DefaultVersion = "0.0.0"
	// ManifestName is the manifest looked up next to the executable's parent directory.
	ManifestName = "Cargo.toml"
	// DefaultBackupSuffix is appended to the manifest path to name the backup.
	DefaultBackupSuffix = ".bak"
)

// Substitution is the literal pair applied to every line of the manifest.
type Substitution struct {
	Find    string
	Replace string
}

// NewSubstitution builds the search and replacement literals for version.
// The version is inserted verbatim, an empty string included.
func NewSubstitution(version string) Substitution {
	return Substitution{
		Find:    versionLine(DefaultVersion),
		Replace: versionLine(version),
	}
}

func versionLine(v string) string {
	return `version = "` + v + `"`
}

// Options configures a Run or DryRun.
type Options struct {
	ManifestPath string    // Manifest to rewrite. Empty resolves relative to the executable.
	Version      string    // Version to write. Empty means DefaultVersion unless VersionSet.
	VersionSet   bool      // Write Version verbatim even when it is empty.
	BackupSuffix string    // Appended to ManifestPath for the backup. Empty means DefaultBackupSuffix.
	Logger       *zap.Logger
	Stdout       io.Writer // Receives the two progress lines. Nil means os.Stdout.
}

// Result describes what a run did (or would do, for a dry run).
type Result struct {
	ManifestPath string
	BackupPath   string
	Substitution Substitution
	Replacements int  // Total occurrences replaced.
	LinesChanged int  // Lines containing at least one occurrence.
	Semver       bool // Whether the requested version is a valid semantic version.
	DryRun       bool
}

// ResolveManifestPath returns the manifest in the parent of the directory
// holding the running executable, with symlinks to the executable resolved.
func ResolveManifestPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return manifestFromExecutable(exe)
}

func manifestFromExecutable(exe string) (string, error) {
	repoDir := filepath.Join(filepath.Dir(exe), "..")
	return filepath.Abs(filepath.Join(repoDir, ManifestName))
}

// BackupPath names the backup written alongside manifest.
func BackupPath(manifest, suffix string) string {
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}
	return manifest + suffix
}

// Run rewrites every `version = "0.0.0"` in the manifest to the requested
// version, keeping a backup of the original. A manifest without the
// placeholder is not an error: it is left byte-identical.
func Run(opts Options) (Result, error) {
	return run(opts, false)
}

// DryRun reports the replacements Run would make without writing the manifest
// or the backup. It still prints the progress lines and still fails when the
// manifest cannot be read.
func DryRun(opts Options) (Result, error) {
	return run(opts, true)
}

// version returns the version to write: Version if it was supplied,
// DefaultVersion otherwise.
func (o Options) version() string {
	if o.Version == "" && !o.VersionSet {
		return DefaultVersion
	}
	return o.Version
}

func run(opts Options, dryRun bool) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	manifest := opts.ManifestPath
	if manifest == "" {
		var err error
		if manifest, err = ResolveManifestPath(); err != nil {
			return Result{}, err
		}
	} else {
		abs, err := filepath.Abs(manifest)
		if err != nil {
			return Result{}, fmt.Errorf("resolving manifest path %q: %w", manifest, err)
		}
		manifest = abs
	}

	version := opts.version()
	sub := NewSubstitution(version)
	meta := Result{
		ManifestPath: manifest,
		BackupPath:   BackupPath(manifest, opts.BackupSuffix),
		Substitution: sub,
		Semver:       isSemver(version),
		DryRun:       dryRun,
	}

	fmt.Fprintf(stdout, "Updating version in %s\n", meta.ManifestPath)
	fmt.Fprintf(stdout, "  from %s to %s\n", sub.Find, sub.Replace)

	if !meta.Semver {
		logger.Debug(fmt.Sprintf("%q is not a semantic version; writing it verbatim", version), zap.String("version", version))
	}

	var (
		stats rewriteStats
		err   error
	)
	if dryRun {
		stats, err = scanManifest(meta.ManifestPath, sub)
	} else {
		stats, err = rewriteManifest(meta.ManifestPath, meta.BackupPath, sub, logger)
	}
	if err != nil {
		return meta, err
	}
	meta.Replacements = stats.replacements
	meta.LinesChanged = stats.lines

	logger.Debug("manifest processed",
		zap.String("manifest", meta.ManifestPath),
		zap.Int("replacements", meta.Replacements),
		zap.Int("lines", meta.LinesChanged),
		zap.Bool("dry_run", meta.DryRun),
	)
	return meta, nil
}

// isSemver reports whether v is a semantic version, with or without a leading "v".
func isSemver(v string) bool {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.IsValid(v)
}
