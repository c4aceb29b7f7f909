// Package pool provides recycled scratch buffers.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices with a guaranteed
// minimum capacity and recycles them through a sync.Pool. Slices
// obtained from it must not be used after Put.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			return make([]byte, 0, defaultCapacity)
		},
	},
}

// ByteSlice returns the shared byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// Get returns a zero-length slice with at least the default capacity.
func (p *ByteSlicePool) Get() []byte {
	return p.pool.Get().([]byte)[:0]
}

// GetCapacity returns a zero-length slice with capacity of at least n.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.pool.Get().([]byte)
	if cap(b) < n {
		p.pool.Put(b[:0])
		return make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns a slice to the pool. Slices that shrank below the default
// capacity are dropped instead.
func (p *ByteSlicePool) Put(b []byte) {
	if cap(b) < defaultCapacity {
		return
	}
	p.pool.Put(b[:0])
}
