// Package storage provides the durable local storage boundary for the
// storefront state: one opaque serialized blob per namespace key, written
// after every mutation and read once at startup.
package storage

// Backend stores a single blob per namespace key.
type Backend interface {
	// Load returns the blob stored under namespace. ok is false when nothing
	// has been stored yet; that is not an error.
	Load(namespace string) (blob []byte, ok bool, err error)
	// Save replaces the blob stored under namespace.
	Save(namespace string, blob []byte) error
	Close() error
}
