// Package archive publishes saved reports into MySQL.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"posixtest/internal/domain"
)

const (
	createRunsTable = "CREATE TABLE IF NOT EXISTS posixtest_runs (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"report VARCHAR(512) NOT NULL, " +
		"total INT NOT NULL, " +
		"passed INT NOT NULL, " +
		"failed INT NOT NULL, " +
		"created_at DATETIME NOT NULL)"

	createResultsTable = "CREATE TABLE IF NOT EXISTS posixtest_results (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"run_id BIGINT NOT NULL, " +
		"position INT NOT NULL, " +
		"name VARCHAR(512) NOT NULL, " +
		"result VARCHAR(16) NOT NULL, " +
		"output MEDIUMTEXT NOT NULL, " +
		"INDEX idx_run (run_id))"

	insertRun    = "INSERT INTO posixtest_runs (report, total, passed, failed, created_at) VALUES (?, ?, ?, ?, ?)"
	insertResult = "INSERT INTO posixtest_results (run_id, position, name, result, output) VALUES (?, ?, ?, ?, ?)"
)

// Archive stores report runs in a MySQL database
type Archive struct {
	db *sql.DB
}

// Open connects to the server, creates the database if needed and returns an Archive on it
func Open(ctx context.Context, settings Settings) (*Archive, error) {
	if !ValidDatabaseName(settings.Database) {
		return nil, fmt.Errorf("invalid database name: %s", settings.Database)
	}
	if err := ensureDatabase(ctx, settings); err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", settings.DSN(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Archive{db: db}, nil
}

// ensureDatabase creates the configured database on the server if it doesn't exist
func ensureDatabase(ctx context.Context, settings Settings) error {
	db, err := sql.Open("mysql", settings.DSN(false))
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	if err := db.QueryRowContext(ctx, query, settings.Database).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check database %s: %w", settings.Database, err)
	}
	if exists {
		return nil
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", settings.Database)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", settings.Database, err)
	}
	return nil
}

// Close closes the connection pool
func (a *Archive) Close() error {
	return a.db.Close()
}

// Publish records one run and its results in a single transaction and returns the run id
func (a *Archive) Publish(ctx context.Context, report string, results domain.ResultSet) (int64, error) {
	for _, stmt := range []string{createRunsTable, createResultsTable} {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("create tables: %w", err)
		}
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertRun, report, len(results), results.Passed(), results.Failed(), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertResult)
	if err != nil {
		return 0, fmt.Errorf("prepare results: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx, runID, i, r.Name, string(r.Result), r.Output); err != nil {
			return 0, fmt.Errorf("insert result %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}
