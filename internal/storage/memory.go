package storage

import "sync"

// MemoryBackend is a process-local Backend used by tests and --backend=memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every Set return an error, for exercising the
	// best-effort save path.
	FailWrites bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (b *MemoryBackend) Set(key string, data []byte) error {
	if b.FailWrites {
		return errQuotaExceeded
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	b.data[key] = stored
	return nil
}

func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, key)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
