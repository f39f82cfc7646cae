package database

import (
	"strings"
)

// QueryBuilder converts SQL queries with ? placeholders to dialect-specific format.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a new QueryBuilder for the given dialect.
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build converts a query with ? placeholders to dialect-specific placeholders.
//
// Example:
//
//	input:    "INSERT INTO items (name, type) VALUES (?, ?)"
//	SQLite:   "INSERT INTO items (name, type) VALUES (?, ?)"
//	Postgres: "INSERT INTO items (name, type) VALUES ($1, $2)"
func (qb *QueryBuilder) Build(query string) string {
	var result strings.Builder
	result.Grow(len(query))
	position := 1

	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(qb.dialect.Placeholder(position))
			position++
		} else {
			result.WriteByte(query[i])
		}
	}

	return result.String()
}

// Insert builds an INSERT statement for the given table and columns.
func (qb *QueryBuilder) Insert(table string, columns ...string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return qb.Build("INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + marks + ")")
}
