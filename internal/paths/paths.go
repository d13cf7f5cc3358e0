package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	OutputDir       = "icons"
	SourceFileName  = "icon.svg"
	IconFilePattern = "icon%d.png"
	DirPerm         = 0755
	FilePerm        = 0644
)

// SourcePath returns the location of the vector source, icons/icon.svg.
func SourcePath() string {
	return filepath.Join(OutputDir, SourceFileName)
}

// IconFileName returns the output file name for a square icon of the
// given size, e.g. "icon48.png".
func IconFileName(size int) string {
	return fmt.Sprintf(IconFilePattern, size)
}

// EnsureDir creates dir (and any missing parents) if it does not exist.
// An existing directory is reused as is. If dir exists as something other
// than a directory the error from the filesystem is returned unchanged.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. An existing file at path is replaced.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
