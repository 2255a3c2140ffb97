package cli

import "posixtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	SuiteDir   string
	NoColor    bool
	Progress   bool
	Filter     string
	Only       string
	SuiteName  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		SuiteDir:   f.SuiteDir,
		NoColor:    f.NoColor,
		Progress:   f.Progress,
		Filter:     f.Filter,
		Only:       f.Only,
		SuiteName:  f.SuiteName,
	}
}
