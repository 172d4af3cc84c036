// Package kid hands out the numeric identities shared by nodes and ports.
//
// Ids are unique within an Allocator and strictly increasing in allocation
// order. Every node and port draws from the process-wide allocator returned
// by Default; tests that need exact id sequences swap it with SetDefault.
package kid

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a node or a port. The zero ID is never allocated.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Allocator returns fresh ids.
type Allocator interface {
	// Next returns an id strictly greater than every id it returned before.
	Next() ID
}

// Counter is an Allocator backed by an atomic counter. The zero value is
// ready to use and starts at 1.
type Counter struct {
	last atomic.Uint64
}

var _ Allocator = (*Counter)(nil)

// NewCounter returns a Counter whose first id is start+1.
func NewCounter(start ID) *Counter {
	c := &Counter{}
	c.last.Store(uint64(start))
	return c
}

func (c *Counter) Next() ID {
	return ID(c.last.Add(1))
}

// Last returns the most recently allocated id, or the start value if none was.
func (c *Counter) Last() ID {
	return ID(c.last.Load())
}

var current atomic.Pointer[Allocator]

func init() {
	SetDefault(&Counter{})
}

// Default returns the process-wide allocator.
func Default() Allocator {
	return *current.Load()
}

// SetDefault replaces the process-wide allocator and returns the previous
// one. Ids are only unique within one allocator: entities created before
// and after a swap must not be mixed in one graph.
func SetDefault(a Allocator) Allocator {
	if a == nil {
		panic("kid: nil allocator")
	}
	prev := current.Swap(&a)
	if prev == nil {
		return nil
	}
	return *prev
}

// Next allocates from Default.
func Next() ID {
	return Default().Next()
}
