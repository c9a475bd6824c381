// Package columns provides csvbind columns for types outside the standard
// library: decimals, UUIDs, dates and the nullable pgx types used when rows
// are headed for PostgreSQL.
//
// The pg columns follow the database's notion of NULL: an empty field binds a
// value with Valid=false, and so does a field holding only whitespace.
package columns
