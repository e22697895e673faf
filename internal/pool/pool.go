// Package pool provides object pooling for getopt output rendering
// Used by the help and debug printers to reuse output buffers between calls
package pool

import (
	"bytes"
	"sync"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T)     // Optional reset function called before reuse
	maxSize int          // Maximum objects to keep (0 = unlimited)
	count   int64        // Current pool size (approximate)
	mutex   sync.RWMutex // Protects count
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	if p.maxSize > 0 {
		p.mutex.Lock()
		if p.count > 0 {
			p.count--
		}
		p.mutex.Unlock()
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	if p.maxSize > 0 {
		p.mutex.Lock()
		defer p.mutex.Unlock()
		if p.count >= int64(p.maxSize) {
			return
		}
		p.count++
	}
	p.pool.Put(obj)
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// maxBufferCap keeps one oversized help page from pinning memory
const maxBufferCap = 64 << 10

// BufferPool pools bytes.Buffer values for rendering output
type BufferPool struct {
	*Pool[bytes.Buffer]
}

// NewBufferPool creates a buffer pool whose buffers start with at least
// defaultCap bytes of room
func NewBufferPool(defaultCap int) *BufferPool {
	return &BufferPool{
		Pool: NewPoolWithReset(
			func() *bytes.Buffer {
				return bytes.NewBuffer(make([]byte, 0, defaultCap))
			},
			func(b *bytes.Buffer) {
				b.Reset() // Reset length but keep capacity
			},
		),
	}
}

// Put returns b to the pool unless it grew too large
func (bp *BufferPool) Put(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxBufferCap {
		return
	}
	bp.Pool.Put(b)
}
