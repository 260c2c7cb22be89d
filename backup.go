package logotool

import (
	"io"
	"os"
)

// BackupSuffix is appended to the destination path for the one-time backup.
const BackupSuffix = ".backup"

// backupOnce preserves the current content of path as path+BackupSuffix the
// first time path is about to be overwritten. An existing backup is never
// replaced, so exactly one backup per destination survives repeated runs.
func (c *Converter) backupOnce(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	backup := path + BackupSuffix
	if _, err := os.Stat(backup); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backup)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	c.logger.Printf("Backed up original to: %s", backup)
	return nil
}
