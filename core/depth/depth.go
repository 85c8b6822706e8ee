// Package depth holds a sparse per-position read-depth ledger.
//
// Positions visited are sparse relative to contig length and the active
// window is small, so a map bounds memory to the live window rather than
// the whole reference.
package depth

// Buffer maps reference positions to observation counts. An absent
// position and a zero count are indistinguishable to readers; reads
// never create entries. The zero value is ready to use.
type Buffer struct {
	data map[int64]uint32
}

// New returns an empty Buffer.
func New() *Buffer { return &Buffer{} }

// Value returns the stored count for pos, or 0 if pos is absent.
func (b *Buffer) Value(pos int64) uint32 {
	return b.data[pos]
}

// Increment adds one observation at pos, creating the entry if needed.
func (b *Buffer) Increment(pos int64) {
	if b.data == nil {
		b.data = make(map[int64]uint32)
	}
	b.data[pos]++
}

// Evict removes the entry for pos. No-op if pos is absent.
func (b *Buffer) Evict(pos int64) {
	delete(b.data, pos)
}

// Len reports the number of live entries (positions with nonzero count).
func (b *Buffer) Len() int { return len(b.data) }
