// Package store persists named action libraries in PostgreSQL, following
// the pgxpool-based repository pattern used throughout the backend's
// storage layer.
package store
