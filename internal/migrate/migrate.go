// Package migrate applies the db/*.sql migrations in filename order, once
// each, recording every applied file in the migrations table.
package migrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

// Run applies the pending migrations in dir and reports progress to out.
// It returns the number of files applied.
func Run(ctx context.Context, conn *pgx.Conn, dir string, out io.Writer) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil || len(files) == 0 {
		return 0, fmt.Errorf("no migration files found in %s", dir)
	}

	// The table may not exist yet on a fresh database.
	applied := make(map[string]bool)
	if rows, err := conn.Query(ctx, "SELECT migration FROM migrations"); err == nil {
		names, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return 0, fmt.Errorf("read applied migrations: %w", err)
		}
		for _, name := range names {
			applied[name] = true
		}
	}

	for _, f := range files {
		if applied[filepath.Base(f)] {
			fmt.Fprintf(out, "  skip: %s\n", filepath.Base(f))
		}
	}

	pending := Pending(files, applied)
	for _, f := range pending {
		filename := filepath.Base(f)
		content, err := os.ReadFile(f)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", filename, err)
		}
		if err := apply(ctx, conn, filename, string(content)); err != nil {
			return 0, err
		}
		fmt.Fprintf(out, "  applied: %s\n", filename)
	}

	if len(pending) == 0 {
		fmt.Fprintln(out, "No pending migrations.")
	} else {
		fmt.Fprintf(out, "\n%d migration(s) applied.\n", len(pending))
	}
	return len(pending), nil
}

// apply runs one migration and records it in the same transaction.
func apply(ctx context.Context, conn *pgx.Conn, filename, sql string) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", filename, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("run %s: %w", filename, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO migrations (migration, description) VALUES ($1, $2)",
		filename, Description(filename)); err != nil {
		return fmt.Errorf("record %s: %w", filename, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", filename, err)
	}
	return nil
}

// Pending returns the files not yet in applied, sorted by name so the date
// prefix gives the run order. files is not modified.
func Pending(files []string, applied map[string]bool) []string {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)
	var pending []string
	for _, f := range sorted {
		if !applied[filepath.Base(f)] {
			pending = append(pending, f)
		}
	}
	return pending
}

// Description strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func Description(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = datePrefix.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
