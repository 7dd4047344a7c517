// Package storage defines the key-value slot abstraction the bookmark list is persisted in.
package storage

// Provider is the interface for slot operations.
// Reading a key that was never written returns an error matching fs.ErrNotExist.
type Provider interface {
	// Read returns the raw value stored under key.
	Read(key string) ([]byte, error)
	// Write replaces the value stored under key.
	Write(key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// Verify implementations satisfy Provider at compile time.
var (
	_ Provider = (*FS)(nil)
	_ Provider = (*SQLite)(nil)
	_ Provider = (*Memory)(nil)
)
