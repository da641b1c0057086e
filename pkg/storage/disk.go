// Package storage abstracts file storage for customer profile pictures.
//
// Two drivers are available:
//   - "local"  local filesystem (default)
//   - "s3"     S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once in internal/server, then:
//
//	storage.Put("profiles/42.png", data)
//	url := storage.URL("profiles/42.png")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// Delete removes the file at path.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
