package discovery

import (
	"path"
	"strings"
)

// Filter filters test directories by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the directories whose name matches pattern.
// Patterns with * or ? are matched against the whole name or any trailing
// part of it ("sig*" matches "interfaces/sigaction"); plain patterns match
// as substrings.
func (f *Filter) FilterByName(dirs []TestDir, pattern string) []TestDir {
	if pattern == "" {
		return dirs
	}

	var filtered []TestDir
	for _, dir := range dirs {
		if f.matches(dir.Name, pattern) {
			filtered = append(filtered, dir)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	segments := strings.Split(name, "/")
	for i := range segments {
		if matched, err := path.Match(pattern, strings.Join(segments[i:], "/")); err == nil && matched {
			return true
		}
	}
	return false
}
