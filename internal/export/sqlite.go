// Package export writes a resolved icon setup to a SQLite database, so that
// other tools can query themes, their lookup chains and directories without
// reparsing index files.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/agentic-research/xdgicon/api"
	"github.com/agentic-research/xdgicon/internal/icons"
)

const schema = `
CREATE TABLE themes (
	name TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	comment TEXT NOT NULL,
	hidden INTEGER NOT NULL,
	index_location TEXT NOT NULL,
	record JSON NOT NULL
);

CREATE TABLE chains (
	theme TEXT NOT NULL,
	position INTEGER NOT NULL,
	ancestor TEXT NOT NULL,
	PRIMARY KEY (theme, position)
) WITHOUT ROWID;

CREATE TABLE directories (
	theme TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	size INTEGER NOT NULL,
	scale INTEGER NOT NULL,
	type TEXT NOT NULL,
	min_size INTEGER NOT NULL,
	max_size INTEGER NOT NULL,
	threshold INTEGER NOT NULL,
	context TEXT,
	PRIMARY KEY (theme, position)
) WITHOUT ROWID;

CREATE TABLE standalone (
	name TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	type TEXT NOT NULL
);
`

// Stats counts what Write stored.
type Stats struct {
	Themes      int
	Links       int
	Directories int
	Standalone  int
}

// Write stores ic in a new SQLite database at dbPath, replacing any existing
// file. Everything is written in one transaction.
func Write(ctx context.Context, dbPath string, ic *icons.Icons) (Stats, error) {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return Stats{}, fmt.Errorf("remove %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = MEMORY"); err != nil {
		return Stats{}, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return Stats{}, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	stats, err := writeAll(ctx, tx, ic)
	if err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit: %w", err)
	}
	return stats, nil
}

func writeAll(ctx context.Context, tx *sql.Tx, ic *icons.Icons) (Stats, error) {
	var stats Stats

	stmtTheme, err := tx.PrepareContext(ctx, `
		INSERT INTO themes (name, display_name, comment, hidden, index_location, record)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer func() { _ = stmtTheme.Close() }()

	stmtChain, err := tx.PrepareContext(ctx, `INSERT INTO chains (theme, position, ancestor) VALUES (?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer func() { _ = stmtChain.Close() }()

	stmtDir, err := tx.PrepareContext(ctx, `
		INSERT INTO directories (theme, position, name, size, scale, type, min_size, max_size, threshold, context)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return stats, err
	}
	defer func() { _ = stmtDir.Close() }()

	for _, name := range ic.ThemeNames() {
		r := api.NewTheme(ic.Themes[name], true)
		record, err := json.Marshal(r)
		if err != nil {
			return stats, fmt.Errorf("marshal theme %s: %w", name, err)
		}
		if _, err := stmtTheme.ExecContext(ctx, r.Name, r.DisplayName, r.Comment, r.Hidden, r.IndexLocation, string(record)); err != nil {
			return stats, fmt.Errorf("insert theme %s: %w", name, err)
		}
		stats.Themes++

		for i, ancestor := range r.Chain {
			if _, err := stmtChain.ExecContext(ctx, r.Name, i, ancestor); err != nil {
				return stats, fmt.Errorf("insert chain %s: %w", name, err)
			}
			stats.Links++
		}

		for i, d := range r.Directories {
			var dirContext any
			if d.Context != "" {
				dirContext = d.Context
			}
			if _, err := stmtDir.ExecContext(ctx, r.Name, i, d.Name, d.Size, d.Scale, d.Type, d.MinSize, d.MaxSize, d.Threshold, dirContext); err != nil {
				return stats, fmt.Errorf("insert directory %s/%s: %w", name, d.Name, err)
			}
			stats.Directories++
		}
	}

	for name, f := range ic.Standalone {
		if _, err := tx.ExecContext(ctx, `INSERT INTO standalone (name, path, type) VALUES (?, ?, ?)`,
			name, f.Path(), f.Type().String()); err != nil {
			return stats, fmt.Errorf("insert standalone %s: %w", name, err)
		}
		stats.Standalone++
	}
	return stats, nil
}
