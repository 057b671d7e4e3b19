package console

import (
	"sync"

	"github.com/GofMan5/Antigravity-Manager/internal/app/errors"
)

// Buffer is a fixed-capacity FIFO store of log entries. Appends evict the
// oldest entry once the capacity is reached; readers always work on copies.
type Buffer struct {
	mu       sync.RWMutex
	entries  []Entry
	head     int // index of oldest entry
	count    int // number of active entries
	capacity int
}

// NewBuffer creates a buffer with the given capacity
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}

	return &Buffer{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}, nil
}

// Append adds one entry in arrival order, evicting the oldest when full
func (b *Buffer) Append(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tail := (b.head + b.count) % b.capacity
	b.entries[tail] = entry

	if b.count < b.capacity {
		b.count++
	} else {
		b.head = (b.head + 1) % b.capacity
	}
}

// Clear empties the buffer unconditionally
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.head = 0
	b.count = 0
}

// Snapshot returns a copy of the current contents, oldest first. A snapshot
// taken concurrently with Append or Clear sees either the pre- or
// post-mutation state, never a partially evicted one.
func (b *Buffer) Snapshot() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.entries[(b.head+i)%b.capacity]
	}

	return out
}

// Len returns the number of retained entries
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.count
}

// Capacity returns the fixed capacity set at construction
func (b *Buffer) Capacity() int {
	return b.capacity
}
