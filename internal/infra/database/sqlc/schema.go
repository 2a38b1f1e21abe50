package sqlc

import (
	"database/sql"
	"fmt"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS lists (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS todos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT 0,
    list_id INTEGER NOT NULL REFERENCES lists (id)
);

CREATE INDEX IF NOT EXISTS idx_todos_list_id ON todos (list_id);
`

// CreateSQLiteSchema creates the lists and todos tables when they do not exist
func CreateSQLiteSchema(db *sql.DB) error {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("create sqlite schema: %w", err)
	}
	return nil
}
