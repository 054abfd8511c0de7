package shapes

import "sync"

// Buffer identifies geometry uploaded to a Backend. The zero value means
// no buffer.
type Buffer uint32

// Backend receives generated geometry and draws it.
//
// Implementations own uploaded data between Upload and Release; the scene
// never touches it after handing it off.
type Backend interface {
	// Upload copies g into backend-owned storage and returns its handle.
	Upload(g *Geometry) (Buffer, error)

	// Release frees the storage behind b. Releasing the zero Buffer or an
	// already released one is a no-op.
	Release(b Buffer)

	// Draw clears the target and renders the first count vertices of b as
	// mode primitives. With the zero Buffer it only clears.
	Draw(b Buffer, mode Mode, count int) error
}

// BufferTable is handle bookkeeping for backends that keep uploaded
// geometry in memory. It is safe for concurrent use.
type BufferTable struct {
	mu   sync.Mutex
	next Buffer
	bufs map[Buffer]*Geometry
}

// Put stores a copy of g and returns its new handle.
func (t *BufferTable) Put(g *Geometry) Buffer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bufs == nil {
		t.bufs = make(map[Buffer]*Geometry)
	}
	t.next++
	t.bufs[t.next] = g.Clone()
	return t.next
}

// Get returns the geometry stored under b.
func (t *BufferTable) Get(b Buffer) (*Geometry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	g, ok := t.bufs[b]
	return g, ok
}

// Delete drops b. Unknown handles are ignored.
func (t *BufferTable) Delete(b Buffer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.bufs, b)
}

// Len returns the number of live buffers.
func (t *BufferTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bufs)
}
