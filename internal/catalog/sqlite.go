package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads the catalog from a `recipes` table with columns
// (name, category, ingredients, units); ingredients and units hold JSON
// text. Rows are re-encoded as the canonical record array so the decode
// path stays the same for every source.
type SQLiteSource struct {
	Path string
}

var _ Source = (*SQLiteSource)(nil)

func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{Path: path}
}

func (s *SQLiteSource) Open(ctx context.Context) (io.ReadCloser, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `SELECT name, category, ingredients, units FROM recipes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var recs []Recipe
	for rows.Next() {
		var (
			name, category  string
			ingredientsJSON string
			unitsJSON       sql.NullString
		)
		if err := rows.Scan(&name, &category, &ingredientsJSON, &unitsJSON); err != nil {
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		r := Recipe{Name: name, Category: category}
		if err := json.Unmarshal([]byte(ingredientsJSON), &r.Ingredients); err != nil {
			return nil, fmt.Errorf("recipe %q: decode ingredients: %w", name, err)
		}
		if unitsJSON.Valid && unitsJSON.String != "" {
			if err := json.Unmarshal([]byte(unitsJSON.String), &r.Units); err != nil {
				return nil, fmt.Errorf("recipe %q: decode units: %w", name, err)
			}
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read recipe rows: %w", err)
	}

	data, err := json.Marshal(recs)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *SQLiteSource) Name() string { return s.Path }
