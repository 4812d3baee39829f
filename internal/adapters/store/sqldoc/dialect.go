package sqldoc

import "fmt"

// Dialect holds the statements that differ between the supported databases.
type Dialect struct {
	Name string
	// DriverName is the database/sql driver registered for this dialect.
	DriverName string

	insert string
	get    string
	list   string
	query  string
}

var (
	Postgres = Dialect{
		Name:       "postgres",
		DriverName: "postgres",
		insert:     `INSERT INTO documents (id, collection, data) VALUES ($1, $2, $3::jsonb)`,
		get:        `SELECT id, data FROM documents WHERE collection = $1 AND id = $2`,
		list:       `SELECT id, data FROM documents WHERE collection = $1 ORDER BY seq`,
		query:      `SELECT id, data FROM documents WHERE collection = $1 AND data->>$2 = $3 ORDER BY seq`,
	}

	SQLite = Dialect{
		Name:       "sqlite",
		DriverName: "sqlite",
		insert:     `INSERT INTO documents (id, collection, data) VALUES (?, ?, ?)`,
		get:        `SELECT id, data FROM documents WHERE collection = ? AND id = ?`,
		list:       `SELECT id, data FROM documents WHERE collection = ? ORDER BY seq`,
		query:      `SELECT id, data FROM documents WHERE collection = ? AND json_extract(data, '$.' || ?) = ? ORDER BY seq`,
	}
)

func DialectByName(name string) (Dialect, error) {
	switch name {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
}
