// Released under an MIT license. See LICENSE.

package sym

import (
	"sync"
)

// Table interns syms by name. It is safe for concurrent use.
type Table struct {
	cache  map[string]*sym
	cachel sync.RWMutex
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{cache: map[string]*sym{}}
}

// Intern returns the sym named v, creating it if it does not already exist.
func (t *Table) Intern(v string) *T {
	if p, ok := t.Lookup(v); ok {
		return p
	}

	t.cachel.Lock()
	defer t.cachel.Unlock()

	// Another writer may have created v since the lookup above.
	if p, ok := t.cache[v]; ok {
		return p
	}

	p := &sym{name: v}
	t.cache[v] = p

	return p
}

// Len returns the number of syms interned so far.
func (t *Table) Len() int {
	t.cachel.RLock()
	defer t.cachel.RUnlock()

	return len(t.cache)
}

// Lookup returns the sym named v, if it has been interned.
func (t *Table) Lookup(v string) (*T, bool) {
	t.cachel.RLock()
	defer t.cachel.RUnlock()

	p, ok := t.cache[v]

	return p, ok
}
