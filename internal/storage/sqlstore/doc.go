// Package sqlstore implements storage.Store on a single kv_store table,
// shared by the SQLite (modernc.org/sqlite) and PostgreSQL (pgx stdlib)
// backends. Schema changes are embedded goose migrations, one directory per
// dialect.
package sqlstore
