// Package bufpool recycles the buffers rendered documents are written to.
package bufpool

import (
	"bytes"
	"sync"
)

// Pool hands out empty buffers. The zero value is not usable, see New.
type Pool struct {
	p *sync.Pool
}

func New() *Pool {
	syncPool := &sync.Pool{}
	syncPool.New = func() interface{} {
		return &Buffer{pool: syncPool}
	}
	return &Pool{p: syncPool}
}

// Get returns an empty buffer, to be given back with Close.
func (p *Pool) Get() *Buffer {
	return p.p.Get().(*Buffer)
}

// Buffer is a bytes.Buffer returned to its pool on Close.
// It must not be used after Close.
type Buffer struct {
	bytes.Buffer
	pool *sync.Pool
}

// Close resets the buffer and puts it back in its pool.
func (b *Buffer) Close() error {
	// Large documents would pin their memory in the pool.
	if b.Cap() > maxPooledSize {
		return nil
	}
	b.Reset()
	b.pool.Put(b)
	return nil
}

const maxPooledSize = 1 << 20
