package db

import (
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect carries what differs between backends: the database/sql driver,
// the tasks DDL and the placeholder style.
type Dialect struct {
	Name       string
	DriverName string

	createTasks string
	numbered    bool
}

var (
	MySQL = Dialect{
		Name:       "mysql",
		DriverName: "mysql",

		createTasks: `CREATE TABLE IF NOT EXISTS tasks (
    id INT AUTO_INCREMENT PRIMARY KEY,
    task VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	}

	Postgres = Dialect{
		Name:       "postgres",
		DriverName: "pgx",

		createTasks: `CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    task VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
		numbered: true,
	}

	// AUTOINCREMENT keeps sqlite from reusing ids of deleted rows
	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite",

		createTasks: `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	}
)

func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

func (d Dialect) CreateTasksTable() string { return d.createTasks }

// Rebind rewrites ? placeholders into the dialect's style.
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
