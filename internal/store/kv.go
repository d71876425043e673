package store

// KV is the persistence contract every repository speaks to. Records are
// JSON blobs addressed by string key, mirroring the storage layout of the
// original client (one entry per draft, per settings row, per user work
// collection, per guide citation list).
type KV interface {
	// Get returns the raw value for key. found is false when the key is
	// absent; that is not an error.
	Get(key string) (value []byte, found bool, err error)

	// Set writes value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string) error

	// Keys returns every stored key starting with prefix.
	Keys(prefix string) ([]string, error)
}
