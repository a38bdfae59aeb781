// Package ttfbin provides endian-correct, bounds-unchecked primitive reads
// over a borrowed TrueType byte buffer. Every TrueType wire value is
// big-endian, and only big-endian reads are provided; there are no
// little-endian helpers.
//
// Bounds are deliberately not checked here. Callers check a cumulative
// length against a table's required size before reading a batch of fields,
// so that a short table surfaces as a specific per-table result code
// instead of a generic slice-bounds panic.
package ttfbin

// Cursor walks a byte slice, consuming fixed-width fields as it goes.
type Cursor struct {
	b []byte
}

// NewCursor returns a Cursor over b, starting at offset 0.
func NewCursor(b []byte) Cursor {
	return Cursor{b: b}
}

// Len reports the number of unread bytes.
func (c Cursor) Len() int {
	return len(c.b)
}

// Bytes returns the unread remainder of the underlying slice.
func (c Cursor) Bytes() []byte {
	return c.b
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) {
	c.b = c.b[n:]
}

// U8 reads the next unsigned 8-bit value.
func (c *Cursor) U8() uint8 {
	x := c.b[0]
	c.b = c.b[1:]
	return x
}

// I8 reads the next signed 8-bit value.
func (c *Cursor) I8() int8 {
	return int8(c.U8())
}

// U16 reads the next big-endian unsigned 16-bit value.
func (c *Cursor) U16() uint16 {
	x := U16(c.b)
	c.b = c.b[2:]
	return x
}

// I16 reads the next big-endian signed 16-bit value.
func (c *Cursor) I16() int16 {
	return int16(c.U16())
}

// U24 reads the next big-endian unsigned 24-bit value.
func (c *Cursor) U24() uint32 {
	x := U24(c.b)
	c.b = c.b[3:]
	return x
}

// U32 reads the next big-endian unsigned 32-bit value.
func (c *Cursor) U32() uint32 {
	x := U32(c.b)
	c.b = c.b[4:]
	return x
}

// I32 reads the next big-endian signed 32-bit value.
func (c *Cursor) I32() int32 {
	return int32(c.U32())
}

// U64 reads the next big-endian unsigned 64-bit value.
func (c *Cursor) U64() uint64 {
	x := U64(c.b)
	c.b = c.b[8:]
	return x
}

// I64 reads the next big-endian signed 64-bit value.
func (c *Cursor) I64() int64 {
	return int64(c.U64())
}

// Tag reads the next 4 raw tag bytes without interpreting them.
func (c *Cursor) Tag() [4]byte {
	var t [4]byte
	copy(t[:], c.b[:4])
	c.b = c.b[4:]
	return t
}

// U8 reads a big-endian unsigned 8-bit value at the start of b.
func U8(b []byte) uint8 {
	return b[0]
}

// U16 reads a big-endian unsigned 16-bit value at the start of b.
func U16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

// U24 reads a big-endian unsigned 24-bit value at the start of b.
func U24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// U32 reads a big-endian unsigned 32-bit value at the start of b.
func U32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// U64 reads a big-endian unsigned 64-bit value at the start of b.
func U64(b []byte) uint64 {
	_ = b[7]
	return uint64(U32(b))<<32 | uint64(U32(b[4:]))
}

// TagToUint32 folds a 4-byte tag into a big-endian uint32, used for fast
// switch-based dispatch on table tags.
func TagToUint32(tag [4]byte) uint32 {
	return U32(tag[:])
}
