package database

import "fmt"

// PostgresDialect implements Dialect for PostgreSQL databases.
type PostgresDialect struct{}

// DriverName returns "postgres" for the lib/pq driver.
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// Placeholder returns "$N" for the given position (PostgreSQL uses numbered placeholders).
func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

// InitStatements returns nothing; PostgreSQL needs no per-connection setup here.
func (d *PostgresDialect) InitStatements() []string {
	return nil
}

// PrimaryKey returns PostgreSQL's serial key.
func (d *PostgresDialect) PrimaryKey() string {
	return "SERIAL PRIMARY KEY"
}

// ClearTable truncates the table and resets its id sequence so that
// re-imported rows keep their original order.
func (d *PostgresDialect) ClearTable(table string) string {
	return "TRUNCATE TABLE " + table + " RESTART IDENTITY"
}
