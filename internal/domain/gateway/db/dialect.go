package db

import "regexp"

// Dialect selects the SQL flavour spoken by the relational store
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var placeholderPattern = regexp.MustCompile(`\$\d+`)

// Rebind rewrites the $n placeholders used by the gateway queries into the dialect's own syntax.
// Queries bind every placeholder once and in ascending order, so sqlite can use anonymous ones.
func (d Dialect) Rebind(query string) string {
	if d == DialectSQLite {
		return placeholderPattern.ReplaceAllString(query, "?")
	}
	return query
}

// Valid reports whether the dialect is supported
func (d Dialect) Valid() bool {
	return d == DialectPostgres || d == DialectSQLite
}
