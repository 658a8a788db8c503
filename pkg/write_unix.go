//go:build !windows

package updateversion

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// writeBackup atomically writes the pre-edit manifest bytes, replacing any
// earlier backup.
func writeBackup(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}

// replaceFile streams fill into a pending file next to path and renames it
// over path once fsynced. The original is untouched if fill fails.
func replaceFile(path string, perm os.FileMode, logger *zap.Logger, fill func(io.Writer) error) (err error) {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if cerr := pendingFile.Cleanup(); cerr != nil {
			if err != nil {
				err = multierror.Append(err, fmt.Errorf("cleanup pending file: %w", cerr))
				return
			}
			logger.Debug("cleanup pending file", zap.Error(cerr))
		}
	}()

	if err := fill(pendingFile); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
