package updateversion

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

type rewriteStats struct {
	replacements int
	lines        int
}

// replaceLines copies r to w one line at a time, replacing every occurrence
// of sub.Find within each line. Line terminators and a missing trailing
// newline are carried through unchanged.
func replaceLines(r io.Reader, w io.Writer, sub Substitution) (rewriteStats, error) {
	var stats rewriteStats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			if n := strings.Count(line, sub.Find); n > 0 {
				line = strings.ReplaceAll(line, sub.Find, sub.Replace)
				stats.replacements += n
				stats.lines++
			}
			if _, err := bw.WriteString(line); err != nil {
				return stats, fmt.Errorf("writing line: %w", err)
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return stats, fmt.Errorf("reading line: %w", readErr)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}

// scanManifest counts the replacements without writing anything.
func scanManifest(manifest string, sub Substitution) (rewriteStats, error) {
	f, err := os.Open(manifest)
	if err != nil {
		return rewriteStats{}, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	return replaceLines(f, io.Discard, sub)
}

// rewriteManifest backs up the manifest and then replaces it with the
// substituted content. The backup is written even when nothing matches.
func rewriteManifest(manifest, backup string, sub Substitution, logger *zap.Logger) (rewriteStats, error) {
	original, perm, err := readWritable(manifest)
	if err != nil {
		return rewriteStats{}, err
	}

	if err := writeBackup(backup, original, perm); err != nil {
		return rewriteStats{}, fmt.Errorf("writing backup %s: %w", backup, err)
	}
	logger.Debug("wrote backup", zap.String("path", backup), zap.Int("bytes", len(original)))

	var stats rewriteStats
	err = replaceFile(manifest, perm, logger, func(w io.Writer) error {
		var err error
		stats, err = replaceLines(bytes.NewReader(original), w, sub)
		return err
	})
	if err != nil {
		return stats, fmt.Errorf("rewriting manifest: %w", err)
	}
	return stats, nil
}

// readWritable reads the manifest through a read-write handle so that a
// manifest we could not edit in place fails before anything is written.
func readWritable(manifest string) ([]byte, os.FileMode, error) {
	f, err := os.OpenFile(manifest, os.O_RDWR, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stat manifest: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading manifest: %w", err)
	}
	return data, info.Mode().Perm(), nil
}
