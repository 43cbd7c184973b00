package store

import "sync"

// MemoryDriver keeps records in a process-local map. It backs tests and
// ephemeral runs; nothing survives the process.
type MemoryDriver struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{records: make(map[string][]byte)}
}

func (d *MemoryDriver) Read(key string) ([]byte, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	raw, ok := d.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (d *MemoryDriver) Write(key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	d.records[key] = stored
	return nil
}

func (d *MemoryDriver) Delete(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.records, key)
	return nil
}
