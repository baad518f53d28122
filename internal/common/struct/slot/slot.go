// Released under an MIT license. See LICENSE.

// Package slot provides luna's variable type.
package slot

import (
	"sync"

	"github.com/severen/luna/internal/common/interface/cell"
)

// T (slot) holds a cell value. A slot is shared by every closure that
// captured the frame it belongs to; setting it is visible to all of them.
type T struct {
	sync.RWMutex
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.Lock()
	defer s.Unlock()

	s.c = c
}
