package lizard

import "io"

// sliceReader is a bounds-checked cursor over a compressed block.
type sliceReader struct {
	data []byte // The compressed block.
	pos  int    // Next unread offset in data.
}

func (r *sliceReader) remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a byte from the slice.
func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// next returns the following n bytes without copying them.
func (r *sliceReader) next(n int) ([]byte, bool) {
	if n < 0 || n > r.remaining() {
		return nil, false
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, true
}

// readUint16LE reads a little-endian 16-bit value.
func (r *sliceReader) readUint16LE() (uint16, bool) {
	b, ok := r.next(2)
	if !ok {
		return 0, false
	}

	return uint16(b[0]) | uint16(b[1])<<8, true
}
