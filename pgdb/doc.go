// Package pgdb wraps a PostgreSQL connection pool with the small set
// of management operations a data-preparation workflow needs: create
// or drop databases, schemas and tables, bulk-import tabular data, and
// read query results back as tables.
//
// What:
//
//   - Config / ConfigFromEnv: connection settings, optionally loaded
//     from a .env file and PG* environment variables.
//   - Connect / ConnectURL: open a pgx connection pool and verify it.
//   - DatabaseExists / CreateDatabase / DropDatabase.
//   - SchemaExists / CreateSchema / DropSchema.
//   - TableExists / DropTable.
//   - ImportTable: bulk insert a store.Table via the COPY protocol.
//   - ReadTable / ReadQuery: results as a store.Table.
//
// DDL statements cannot take bind parameters, so every database,
// schema, table and column name passing through this package is
// validated and quoted first; a name that fails validation is rejected
// with ErrBadIdentifier.
//
// Maintenance operations (CreateDatabase, DropDatabase) must run on a
// pool connected to a different database, conventionally "postgres".
package pgdb
