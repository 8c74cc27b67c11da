package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect captures the differences between the supported SQL backends
type Dialect struct {
	// Name is also the migrations directory
	Name string
	// DriverName is the database/sql driver registered for the dialect
	DriverName string
	// numbered placeholders ($1, $2, ...) instead of ?
	numbered bool
	// syncSequence realigns the id generator after an insert with an explicit id.
	// SQLite AUTOINCREMENT already tracks the largest id, so it needs none.
	syncSequence string
}

var (
	SQLite   = Dialect{Name: "sqlite", DriverName: "sqlite"}
	Postgres = Dialect{
		Name:         "postgres",
		DriverName:   "pgx",
		numbered:     true,
		syncSequence: "SELECT setval(pg_get_serial_sequence('players', 'id'), (SELECT MAX(id) FROM players))",
	}
)

// Rebind rewrites ? placeholders for the dialect.
// Queries in this package never contain a literal '?'.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
