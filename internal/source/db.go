package source

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DefaultQuery is the query used when -db is given without -query. It
// expects a daily_values table with one row per day, in day order.
const DefaultQuery = "SELECT value FROM daily_values ORDER BY day"

// ReadDB reads a single numeric column from a SQLite database. The query
// must return one float per row, ordered by day-of-year.
func ReadDB(path, query string) ([]float64, error) {
	if query == "" {
		query = DefaultQuery
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query values: %w", err)
	}
	defer rows.Close()

	var vals []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan value %d: %w", len(vals)+1, err)
		}
		vals = append(vals, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return vals, nil
}
