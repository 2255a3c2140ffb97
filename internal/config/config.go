package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Layout
	WorkDir          string `yaml:"work_dir"`
	SuiteDir         string `yaml:"suite_dir"`
	PatchFile        string `yaml:"patch_file"`
	PatchedMarker    string `yaml:"patched_marker"`
	ConfiguredMarker string `yaml:"configured_marker"`

	// Build settings
	Make    string `yaml:"make"`
	CFlags  string `yaml:"cflags"`
	LDFlags string `yaml:"ldflags"`

	// Run settings
	ArtifactSuffix string    `yaml:"artifact_suffix"`
	LogfileName    string    `yaml:"logfile_name"`
	TestSets       []TestSet `yaml:"test_sets"`

	// Export settings
	JUnitSuiteName string `yaml:"junit_suite_name"`

	// GOOS the platform shims are chosen for
	Platform string `yaml:"-"`

	// Command flags
	Flags Flags `yaml:"-"`
}

// TestSet is a top-level suite directory run as one unit
type TestSet struct {
	Name string   `yaml:"name"`
	Skip []string `yaml:"skip"`
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		WorkDir:          DefaultWorkDir,
		SuiteDir:         DefaultSuiteDir,
		PatchFile:        DefaultPatchFile,
		PatchedMarker:    DefaultPatchedMarker,
		ConfiguredMarker: DefaultConfiguredMarker,
		CFlags:           DefaultCFlags,
		ArtifactSuffix:   DefaultArtifactSuffix,
		LogfileName:      DefaultLogfileName,
		TestSets:         DefaultTestSets(runtime.GOOS),
		JUnitSuiteName:   DefaultJUnitSuiteName,
		Platform:         runtime.GOOS,
	}
}

// Load builds a config from defaults, the YAML file, the environment and flags, in that order.
func Load(flags Flags) (*Config, error) {
	cfg := New()

	path := flags.ConfigFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	cfg.ApplyFlags(flags)
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	for i, ts := range c.TestSets {
		if strings.TrimSpace(ts.Name) == "" {
			return fmt.Errorf("parse config file %s: test set %d has no name", path, i)
		}
	}
	return nil
}

// ApplyEnv loads the .env file from the work dir, if any, and applies POSIXTEST_* overrides
func (c *Config) ApplyEnv() {
	// .env might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(c.WorkDir, DefaultEnvFile))

	if v := os.Getenv("POSIXTEST_MAKE"); v != "" {
		c.Make = v
	}
	if v := os.Getenv("POSIXTEST_SUITE_DIR"); v != "" {
		c.SuiteDir = v
	}
	if v := os.Getenv("POSIXTEST_CFLAGS"); v != "" {
		c.CFlags = v
	}
}

// ApplyFlags records flags and lets them override file and environment settings
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.SuiteDir != "" {
		c.SuiteDir = flags.SuiteDir
	}
	if flags.SuiteName != "" {
		c.JUnitSuiteName = flags.SuiteName
	}
}

// GetSuitePath returns the suite directory, relative to the work dir unless absolute
func (c *Config) GetSuitePath() string {
	if filepath.IsAbs(c.SuiteDir) {
		return c.SuiteDir
	}
	return filepath.Join(c.WorkDir, c.SuiteDir)
}

// GetPatchPath returns the path to the patch file
func (c *Config) GetPatchPath() string {
	return filepath.Join(c.WorkDir, c.PatchFile)
}

// GetPatchedMarkerPath returns the path of the marker written after patching
func (c *Config) GetPatchedMarkerPath() string {
	return filepath.Join(c.WorkDir, c.PatchedMarker)
}

// GetConfiguredMarkerPath returns the path of the marker written after configure
func (c *Config) GetConfiguredMarkerPath() string {
	return filepath.Join(c.GetSuitePath(), c.ConfiguredMarker)
}

// IsDarwin reports whether the macOS build shims apply
func (c *Config) IsDarwin() bool {
	return c.Platform == "darwin"
}
