// Package updateversion rewrites the version placeholder in a Cargo manifest.
//
// A manifest is checked in with the literal line
//
//	version = "0.0.0"
//
// and release tooling stamps the real version into it just before building.
// Run replaces every occurrence of that literal, line by line, with
// `version = "<version>"`, writes a backup of the untouched manifest next to it
// (Cargo.toml.bak by default) and atomically swaps in the new content.
// The version is not validated; it is inserted verbatim.
//
// A manifest that no longer contains the placeholder is not an error: Run
// succeeds, reports zero replacements and leaves the manifest byte-identical.
//
// Usage Example:
//
//	import (
//	    "log"
//	    updateversion "github.com/bcomnes/updateversion/pkg"
//	)
//
//	func main() {
//	    meta, err := updateversion.Run(updateversion.Options{
//	        ManifestPath: "Cargo.toml",
//	        Version:      "1.4.0",
//	    })
//	    if err != nil {
//	        log.Fatalf("version update failed: %v", err)
//	    }
//	    log.Printf("replaced %d occurrence(s)", meta.Replacements)
//	}
//
// For additional details and API documentation, see https://pkg.go.dev/github.com/bcomnes/updateversion.
package updateversion
