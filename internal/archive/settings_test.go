package archive

import (
	"testing"
)

func TestSettings_DSN(t *testing.T) {
	s := Settings{Host: "db.local", Port: "3307", User: "ci", Password: "secret", Database: "posix_results"}

	if got, want := s.DSN(true), "ci:secret@tcp(db.local:3307)/posix_results?parseTime=true"; got != want {
		t.Errorf("DSN(true) = %s, want %s", got, want)
	}
	if got, want := s.DSN(false), "ci:secret@tcp(db.local:3307)/?parseTime=true"; got != want {
		t.Errorf("DSN(false) = %s, want %s", got, want)
	}
}

func TestSettingsFromEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"} {
			t.Setenv(key, "")
		}
		s := SettingsFromEnv(dir)
		want := Settings{Host: "127.0.0.1", Port: "3306", User: "root", Password: "", Database: "posixtest"}
		if s != want {
			t.Errorf("expected %+v, got %+v", want, s)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "mysql")
		t.Setenv("DB_DATABASE", "nightly")
		s := SettingsFromEnv(dir)
		if s.Host != "mysql" || s.Database != "nightly" {
			t.Errorf("unexpected settings %+v", s)
		}
	})
}

func TestValidDatabaseName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{name: "posixtest", valid: true},
		{name: "testing_1", valid: true},
		{name: "", valid: false},
		{name: "a`; DROP DATABASE x; --", valid: false},
		{name: "with-dash", valid: false},
	}

	for _, tt := range tests {
		if got := ValidDatabaseName(tt.name); got != tt.valid {
			t.Errorf("ValidDatabaseName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}
