package storage

import "io"

// BlobStore archives raw webhook payloads so a scored result can always be
// traced back to the exact bytes the form provider delivered.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
