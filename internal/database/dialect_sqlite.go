package database

// SQLiteDialect implements Dialect for SQLite databases.
type SQLiteDialect struct{}

// DriverName returns "sqlite" for the modernc.org/sqlite driver.
func (d *SQLiteDialect) DriverName() string {
	return "sqlite"
}

// Placeholder returns "?" for all positions (SQLite uses positional ? placeholders).
func (d *SQLiteDialect) Placeholder(position int) string {
	return "?"
}

// InitStatements returns SQLite PRAGMA statements. Catalog tables are read
// far more than written, so WAL keeps readers from blocking an import.
func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

// PrimaryKey returns SQLite's auto-incrementing integer key.
func (d *SQLiteDialect) PrimaryKey() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// ClearTable returns a DELETE statement; SQLite has no TRUNCATE.
func (d *SQLiteDialect) ClearTable(table string) string {
	return "DELETE FROM " + table
}
