package archive

import (
	"net"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Settings locate the MySQL server results are published to
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

var databaseNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// SettingsFromEnv reads DB_* variables, loading workDir/.env first if present
func SettingsFromEnv(workDir string) Settings {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(workDir, ".env"))

	return Settings{
		Host:     getenv("DB_HOST", "127.0.0.1"),
		Port:     getenv("DB_PORT", "3306"),
		User:     getenv("DB_USERNAME", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: getenv("DB_DATABASE", "posixtest"),
	}
}

// DSN returns the driver connection string. Without a database the DSN
// targets the server, which is how the database itself gets created.
func (s Settings) DSN(withDatabase bool) string {
	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.Host, s.Port)
	cfg.ParseTime = true
	if withDatabase {
		cfg.DBName = s.Database
	}
	return cfg.FormatDSN()
}

// ValidDatabaseName reports whether name is safe to interpolate into DDL
func ValidDatabaseName(name string) bool {
	return databaseNamePattern.MatchString(name)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
