package pgdb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kavelaar/geokit/store"
)

// ErrBadIdentifier indicates a database, schema, table or column name
// that fails validation.
var ErrBadIdentifier = errors.New("pgdb: invalid identifier")

// identPattern accepts conventional unquoted PostgreSQL identifiers.
var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// QuoteIdentifier validates name and returns it double-quoted for safe
// interpolation into DDL.
func QuoteIdentifier(name string) (string, error) {
	if !identPattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrBadIdentifier, name)
	}
	return pgx.Identifier{name}.Sanitize(), nil
}

// DB is a PostgreSQL connection pool plus the management helpers.
type DB struct {
	pool *pgxpool.Pool
}

// Connect opens a verified connection pool for cfg.
func Connect(ctx context.Context, cfg Config) (*DB, error) {
	return ConnectURL(ctx, cfg.URL())
}

// ConnectURL opens a verified connection pool for a postgres:// URL.
func ConnectURL(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgdb: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgdb: verify connection: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool exposes the underlying pgx pool for queries outside this
// package's helpers.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// DatabaseExists reports whether a database of the given name exists
// on the server.
func (db *DB) DatabaseExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_catalog.pg_database WHERE datname = $1)`,
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgdb: check database %s: %w", name, err)
	}
	return exists, nil
}

// CreateDatabase creates a database. It is not an error if one of the
// same name already exists. Must run on a pool connected to another
// database.
func (db *DB) CreateDatabase(ctx context.Context, name string) error {
	exists, err := db.DatabaseExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	quoted, err := QuoteIdentifier(name)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "CREATE DATABASE "+quoted); err != nil {
		return fmt.Errorf("pgdb: create database %s: %w", name, err)
	}
	return nil
}

// DropDatabase drops a database if it exists. Must run on a pool
// connected to another database.
func (db *DB) DropDatabase(ctx context.Context, name string) error {
	quoted, err := QuoteIdentifier(name)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "DROP DATABASE IF EXISTS "+quoted); err != nil {
		return fmt.Errorf("pgdb: drop database %s: %w", name, err)
	}
	return nil
}

// SchemaExists reports whether the schema exists in the connected
// database.
func (db *DB) SchemaExists(ctx context.Context, schema string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.schemata WHERE schema_name = $1)`,
		schema).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgdb: check schema %s: %w", schema, err)
	}
	return exists, nil
}

// CreateSchema creates the schema if it does not exist.
func (db *DB) CreateSchema(ctx context.Context, schema string) error {
	quoted, err := QuoteIdentifier(schema)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoted); err != nil {
		return fmt.Errorf("pgdb: create schema %s: %w", schema, err)
	}
	return nil
}

// DropSchema drops the schema and everything in it.
func (db *DB) DropSchema(ctx context.Context, schema string) error {
	quoted, err := QuoteIdentifier(schema)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "DROP SCHEMA IF EXISTS "+quoted+" CASCADE"); err != nil {
		return fmt.Errorf("pgdb: drop schema %s: %w", schema, err)
	}
	return nil
}

// TableExists reports whether the table exists in the given schema.
func (db *DB) TableExists(ctx context.Context, schema, table string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2)`,
		schema, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("pgdb: check table %s.%s: %w", schema, table, err)
	}
	return exists, nil
}

// DropTable drops the table if it exists.
func (db *DB) DropTable(ctx context.Context, schema, table string) error {
	qualified, err := qualify(schema, table)
	if err != nil {
		return err
	}
	if _, err := db.pool.Exec(ctx, "DROP TABLE IF EXISTS "+qualified); err != nil {
		return fmt.Errorf("pgdb: drop table %s.%s: %w", schema, table, err)
	}
	return nil
}

// ImportTable bulk-inserts tbl into schema.table via the COPY
// protocol, creating the table (all text columns) when it does not
// exist. Returns the number of rows copied.
func (db *DB) ImportTable(ctx context.Context, schema, table string, tbl store.Table) (int64, error) {
	if len(tbl.Header) == 0 {
		return 0, fmt.Errorf("pgdb: import into %s.%s: %w: empty header", schema, table, ErrBadIdentifier)
	}
	qualified, err := qualify(schema, table)
	if err != nil {
		return 0, err
	}

	cols := make([]string, len(tbl.Header))
	for i, col := range tbl.Header {
		quoted, err := QuoteIdentifier(col)
		if err != nil {
			return 0, err
		}
		cols[i] = quoted + " text"
	}
	ddl := "CREATE TABLE IF NOT EXISTS " + qualified + " (" + strings.Join(cols, ", ") + ")"
	if _, err := db.pool.Exec(ctx, ddl); err != nil {
		return 0, fmt.Errorf("pgdb: create table %s.%s: %w", schema, table, err)
	}

	rows := make([][]any, len(tbl.Rows))
	for i, row := range tbl.Rows {
		vals := make([]any, len(row))
		for j, v := range row {
			vals[j] = v
		}
		rows[i] = vals
	}

	n, err := db.pool.CopyFrom(ctx, pgx.Identifier{schema, table}, tbl.Header, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("pgdb: copy into %s.%s: %w", schema, table, err)
	}
	return n, nil
}

// ReadTable reads the full contents of schema.table.
func (db *DB) ReadTable(ctx context.Context, schema, table string) (store.Table, error) {
	qualified, err := qualify(schema, table)
	if err != nil {
		return store.Table{}, err
	}
	return db.ReadQuery(ctx, "SELECT * FROM "+qualified)
}

// ReadQuery runs an arbitrary query and renders the result set as a
// store.Table, with every value formatted as a string and NULL as the
// empty string.
func (db *DB) ReadQuery(ctx context.Context, sql string, args ...any) (store.Table, error) {
	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return store.Table{}, fmt.Errorf("pgdb: query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Name
	}

	tbl := store.Table{Header: header}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return store.Table{}, fmt.Errorf("pgdb: read row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				continue
			}
			row[i] = fmt.Sprint(v)
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return store.Table{}, fmt.Errorf("pgdb: iterate rows: %w", err)
	}
	return tbl, nil
}

// qualify validates and quotes a schema-qualified table name.
func qualify(schema, table string) (string, error) {
	if !identPattern.MatchString(schema) || !identPattern.MatchString(table) {
		return "", fmt.Errorf("%w: %q.%q", ErrBadIdentifier, schema, table)
	}
	return pgx.Identifier{schema, table}.Sanitize(), nil
}
