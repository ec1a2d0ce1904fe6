package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// SQL stores key/value pairs in a single table, on sqlite or postgres.
type SQL struct {
	db *sql.DB
}

// Open opens a DB and ensures the kv table exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQL, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:popsmath.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/popsmath?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaKV); err != nil {
		return nil, err
	}
	return &SQL{db: db}, nil
}

const schemaKV = `
CREATE TABLE IF NOT EXISTS kv (
  k TEXT PRIMARY KEY,
  v TEXT NOT NULL
);
`

func (s *SQL) Get(key string) ([]byte, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k=$1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *SQL) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (k,v) VALUES ($1,$2)
		ON CONFLICT (k) DO UPDATE SET v=EXCLUDED.v`, key, string(value))
	return err
}

func (s *SQL) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE k=$1`, key)
	return err
}

func (s *SQL) Close() error { return s.db.Close() }
