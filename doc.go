// Package main implements the update-version CLI tool.
//
// The update-version tool stamps a release version into a Cargo manifest that is
// checked in with the placeholder line `version = "0.0.0"`. It is meant to live
// in a repository subdirectory (for example scripts/ or bin/) and, unless told
// otherwise, edits the Cargo.toml one directory above the executable.
//
// Command Usage:
//
//	update-version [flags] [version]
//
// The version argument is optional and defaults to "0.0.0". A supplied version,
// even an empty one, is inserted verbatim; no semantic version check is made. Every run prints two lines:
//
//	Updating version in /abs/path/Cargo.toml
//	  from version = "0.0.0" to version = "1.2.3"
//
// Flags:
//
//	--manifest, -m:   Path to the manifest to update instead of ../Cargo.toml.
//	--backup-suffix:  Suffix for the backup copy of the original manifest (default ".bak").
//	--dry-run:        Count the replacements without writing anything.
//	--verbose, -v:    Log details (replacement counts, backup path) to stderr.
//	--version:        Displays the version of the update-version CLI tool and exits.
//
// Examples:
//
//	# Stamp 1.2.3 into ../Cargo.toml, keeping ../Cargo.toml.bak
//	update-version 1.2.3
//
//	# Same as "update-version 0.0.0": the manifest keeps its placeholder, the backup is still written
//	update-version
//
//	# Update a specific manifest
//	update-version -m ./crates/app/Cargo.toml 2.0.0-rc.1
//
//	# A version starting with a dash goes after "--" so it is not read as a flag
//	update-version -- -rc1
//
// The command exits 0 when the manifest was processed, including when it did not
// contain the placeholder, and 1 when the manifest cannot be opened for reading
// and writing.
package main
