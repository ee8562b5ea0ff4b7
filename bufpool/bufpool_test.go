package bufpool_test

import (
	"testing"

	"github.com/influxdata/xdom/bufpool"
	"github.com/stretchr/testify/assert"
)

func TestPool_Get(t *testing.T) {
	p := bufpool.New()

	b := p.Get()
	b.WriteString("document")
	assert.Equal(t, "document", b.String())
	assert.NoError(t, b.Close())

	// Recycled or new, the buffer is always empty.
	b = p.Get()
	assert.Equal(t, 0, b.Len())
	assert.NoError(t, b.Close())
}

func TestBuffer_Close_Large(t *testing.T) {
	p := bufpool.New()
	b := p.Get()
	b.Grow(2 << 20)
	b.WriteString("large")
	assert.NoError(t, b.Close())
	assert.Equal(t, "large", b.String(), "oversized buffers are dropped, not reset")
}
