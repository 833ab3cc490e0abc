// Package storage abstracts where uploaded images live.
//
// Two drivers are available:
//   - "local" — local filesystem (default), served back at /images/*
//   - "s3"    — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	storage.Connect() // boot once at startup
//
//	storage.PutStream("images/1700000000-pizza.png", file)
//	url := storage.URL("images/1700000000-pizza.png")
//	_ = storage.Delete("images/1700000000-pizza.png") // nil if absent
package storage

import (
	"io"
	"time"
)

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Missing is the inverse of Exists.
	Missing(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// LastModified returns the file's last-modified time.
	LastModified(path string) (time.Time, error)

	// URL returns the public URL for path.
	URL(path string) string

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error
}
