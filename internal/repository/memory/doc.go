// Package memory implements the domain repositories in process memory.
// It substitutes for Postgres when no database is configured: records live
// for the lifetime of the process and reads return the same shapes and
// ordering as the Postgres repositories.
package memory
