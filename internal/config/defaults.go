package config

const (
	// DefaultWorkDir is the directory holding the patch file and the patched marker
	DefaultWorkDir = "."
	// DefaultSuiteDir is the vendored test suite, relative to the work dir
	DefaultSuiteDir = "testcases/open_posix_testsuite"
	// DefaultPatchFile is applied to the suite once, if present
	DefaultPatchFile = "fixes.patch"
	// DefaultPatchedMarker records that the patch has been applied
	DefaultPatchedMarker = ".patched"
	// DefaultConfiguredMarker records that configure has run inside the suite
	DefaultConfiguredMarker = ".configured"
	// DefaultCFlags are passed to configure on every platform
	DefaultCFlags = "-DVERBOSE=10"
	// DefaultArtifactSuffix marks a directory as containing runnable tests
	DefaultArtifactSuffix = ".run-test"
	// DefaultLogfileName is written by the suite's test target
	DefaultLogfileName = "logfile"
	// DefaultJUnitSuiteName names the single exported test suite
	DefaultJUnitSuiteName = "open_posix_testsuite"
	// DefaultConfigFile is read when present and --config is not given
	DefaultConfigFile = "posixtest.yaml"
	// DefaultEnvFile is loaded into the environment before overrides apply
	DefaultEnvFile = ".env"
)

// DefaultTestSets returns the test sets run for the given GOOS, in order.
func DefaultTestSets(goos string) []TestSet {
	conformanceSkip := []string{}
	if goos == "darwin" {
		conformanceSkip = []string{"mmap"}
	}
	return []TestSet{
		{Name: "functional", Skip: []string{}},
		{Name: "conformance", Skip: conformanceSkip},
	}
}
