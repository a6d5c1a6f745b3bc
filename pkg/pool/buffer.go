package pool

import "sync"

// ChunkPool manages a pool of fixed-size read buffers so that repeated
// runs do not reallocate their chunk buffer.
type ChunkPool struct {
	size int       // Size of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// NewChunkPool creates a pool handing out buffers of exactly size bytes.
func NewChunkPool(size int) *ChunkPool {
	return &ChunkPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Get retrieves a buffer from the pool. Its length equals the pool size.
func (cp *ChunkPool) Get() []byte {
	return *cp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool. Buffers of the wrong size are dropped.
func (cp *ChunkPool) Put(buf []byte) {
	if len(buf) != cp.size {
		return
	}
	cp.pool.Put(&buf)
}
