//go:build windows

package updateversion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

func writeBackup(path string, data []byte, perm os.FileMode) error {
	return replaceFile(path, perm, zap.NewNop(), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// replaceFile writes through a temp file in the same directory and renames it
// over path. Windows offers no fsync-then-rename guarantee, so this is best effort.
func replaceFile(path string, perm os.FileMode, logger *zap.Logger, fill func(io.Writer) error) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile == nil {
			return
		}
		tmpFile.Close()
		if rerr := os.Remove(tmpPath); rerr != nil {
			if err != nil {
				err = multierror.Append(err, fmt.Errorf("remove temp file: %w", rerr))
				return
			}
			logger.Debug("remove temp file", zap.Error(rerr))
		}
	}()

	if err := fill(tmpFile); err != nil {
		return err
	}
	if err := tmpFile.Chmod(perm); err != nil {
		logger.Debug("chmod temp file", zap.Error(err))
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
