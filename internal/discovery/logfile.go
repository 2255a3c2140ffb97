package discovery

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Logfiles locates and clears the logfiles the suite writes into test directories
type Logfiles struct {
	fs   afero.Fs
	name string
}

// NewLogfiles creates a new Logfiles for files called name
func NewLogfiles(fs afero.Fs, name string) *Logfiles {
	return &Logfiles{fs: fs, name: name}
}

// Find returns the logfile path in dir and whether it exists
func (l *Logfiles) Find(dir string) (string, bool) {
	path := filepath.Join(dir, l.name)
	info, err := l.fs.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// Read returns the content of a logfile
func (l *Logfiles) Read(path string) (string, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RemoveAll deletes every regular file named like a logfile under root and
// returns how many were removed.
func (l *Logfiles) RemoveAll(root string) (int, error) {
	var stale []string
	err := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() && info.Name() == l.name {
			stale = append(stale, path)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, path := range stale {
		if err := l.fs.Remove(path); err != nil {
			return 0, err
		}
	}
	return len(stale), nil
}
