package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoTestSet is returned when a test set root does not exist
var ErrNoTestSet = errors.New("no such test set")

// TestDir is a directory holding runnable test artifacts
type TestDir struct {
	Path    string // Path to the directory, under the suite root
	Name    string // Path relative to the test set, used for display
	Skipped bool   // A path segment matched a skip token
}

// Scanner finds test directories inside a test set
type Scanner struct {
	fs     afero.Fs
	suffix string
}

// NewScanner creates a new Scanner recognizing artifacts by suffix
func NewScanner(fs afero.Fs, suffix string) *Scanner {
	return &Scanner{fs: fs, suffix: suffix}
}

// Scan walks suiteRoot/set in lexical order and returns every directory that
// directly contains an artifact. A directory is marked skipped when any
// segment of its path below suiteRoot equals one of the skip tokens.
func (s *Scanner) Scan(suiteRoot, set string, skip []string) ([]TestDir, error) {
	skipMap := make(map[string]bool)
	for _, token := range skip {
		skipMap[token] = true
	}

	root := filepath.Join(suiteRoot, set)
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoTestSet, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test set is not a directory: %s", root)
	}

	var dirs []TestDir
	err = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}

		hasTests, err := s.hasArtifact(path)
		if err != nil {
			return err
		}
		if !hasTests {
			return nil
		}

		rel, err := filepath.Rel(suiteRoot, path)
		if err != nil {
			return err
		}
		segments := strings.Split(filepath.ToSlash(rel), "/")

		dir := TestDir{
			Path: path,
			Name: strings.Join(segments[1:], "/"),
		}
		for _, segment := range segments {
			if skipMap[segment] {
				dir.Skipped = true
				break
			}
		}
		dirs = append(dirs, dir)
		return nil
	})

	return dirs, err
}

// hasArtifact reports whether dir directly contains a file with the artifact suffix
func (s *Scanner) hasArtifact(dir string) (bool, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), s.suffix) {
			return true, nil
		}
	}
	return false, nil
}
