// Package postgres implements the domain repositories on PostgreSQL.
//
// The catalog and override tables carry the uniqueness and cascade-delete
// constraints; bulk operations run inside a single pgx transaction and
// validate full membership before writing anything.
package postgres
