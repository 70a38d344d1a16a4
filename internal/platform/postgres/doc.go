// Package postgres provides PostgreSQL implementations of the store
// interfaces, including error mapping from PostgreSQL error codes to the
// store's sentinel errors.
package postgres
