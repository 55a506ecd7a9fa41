package blob

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process blob store used by tests. Arm FailWith to simulate
// an unavailable backend; PutCalls counts write attempts either way.
type Memory struct {
	mu       sync.Mutex
	objects  map[string][]byte
	types    map[string]string
	FailWith error
	PutCalls int
}

func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *Memory) Put(_ context.Context, path string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.FailWith != nil {
		return m.FailWith
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[path] = buf
	m.types[path] = contentType
	return nil
}

func (m *Memory) Get(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[path]
	if !ok {
		return nil, fmt.Errorf("blob not found: %q", path)
	}
	return data, nil
}

// Len reports how many blobs were stored.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// ContentType reports the content type recorded for a stored blob.
func (m *Memory) ContentType(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.types[path]
}
