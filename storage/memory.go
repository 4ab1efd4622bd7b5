package storage

import "sync"

// MemoryBackend holds blobs in memory. Used in tests and for ephemeral
// deployments that do not want state to outlive the process.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func OpenMemory() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(namespace string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	blob, ok := b.blobs[namespace]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

func (b *MemoryBackend) Save(namespace string, blob []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	copied := make([]byte, len(blob))
	copy(copied, blob)
	b.blobs[namespace] = copied
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
