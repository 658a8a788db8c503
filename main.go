// Package main implements a CLI tool that stamps a release version into the
// placeholder line of a Cargo manifest.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	updateversion "github.com/bcomnes/updateversion/pkg"
)

const longDesc = `Replaces every occurrence of version = "0.0.0" in the project manifest with
version = "<version>" and keeps a copy of the original next to it (default: Cargo.toml.bak).

The manifest defaults to ../Cargo.toml relative to the directory holding this executable.
A manifest without the placeholder is left unchanged and the command still succeeds.`

const examples = `  update-version 1.2.3
  update-version --manifest ./Cargo.toml 2.0.0-rc.1
  update-version --dry-run 1.2.3
  update-version -- -rc1`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		manifest     string
		backupSuffix string
		dryRun       bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:           "update-version [flags] [version]",
		Short:         "Stamp a version into the manifest's version placeholder.",
		Long:          longDesc,
		Example:       examples,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			logger := newLogger(stderr, verbose)
			defer func() { _ = logger.Sync() }()

			var version string
			if len(args) > 0 {
				version = args[0]
			}
			if len(args) > 1 {
				logger.Debug("ignoring extra arguments", zap.Strings("args", args[1:]))
			}

			opts := updateversion.Options{
				ManifestPath: manifest,
				Version:      version,
				VersionSet:   len(args) > 0,
				BackupSuffix: backupSuffix,
				Logger:       logger,
				Stdout:       stdout,
			}

			var (
				meta updateversion.Result
				err  error
			)
			if dryRun {
				meta, err = updateversion.DryRun(opts)
			} else {
				meta, err = updateversion.Run(opts)
			}
			if err != nil {
				return err
			}

			if meta.Replacements == 0 {
				logger.Debug("placeholder not found; manifest unchanged", zap.String("manifest", meta.ManifestPath))
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("update-version CLI version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&manifest, "manifest", "m", "", "Path to the manifest to update (default: ../"+updateversion.ManifestName+" next to the executable)")
	flags.StringVar(&backupSuffix, "backup-suffix", updateversion.DefaultBackupSuffix, "Suffix appended to the manifest path for the backup copy")
	flags.BoolVar(&dryRun, "dry-run", false, "Report what would change without writing the manifest or the backup")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log details to stderr")

	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
