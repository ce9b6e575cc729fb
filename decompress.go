package lizard

import (
	"fmt"
	"io"
)

// Decompress decodes a whole mozLz4 container (magic, declared size, LZ4 block).
// Options nil means DefaultOptions.
func Decompress(data []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	c, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}

	if opts.MaxDecodedSize > 0 && c.DeclaredSize > opts.MaxDecodedSize {
		return nil, fmt.Errorf("%w: declared=%d limit=%d", ErrSizeLimit, c.DeclaredSize, opts.MaxDecodedSize)
	}

	return DecodeBlock(c.DeclaredSize, c.Block)
}

// DecompressFromReader reads r to EOF and decodes it as a mozLz4 container.
// It returns the decoded bytes and the number of bytes consumed from r.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, int64(len(data)), err
	}

	out, err := Decompress(data, opts)
	if err != nil {
		return nil, int64(len(data)), err
	}

	return out, int64(len(data)), nil
}

// DecodeBlock decodes one raw LZ4 block that must expand to exactly declaredSize bytes.
// A zero declaredSize yields an empty result without looking at compressed.
func DecodeBlock(declaredSize uint32, compressed []byte) ([]byte, error) {
	if declaredSize == 0 {
		return []byte{}, nil
	}

	// A block always holds at least one token.
	if len(compressed) == 0 {
		return nil, decodeError(ErrTruncated, 0, "empty block")
	}

	size := int(declaredSize)
	out := make([]byte, 0, size)
	r := &sliceReader{data: compressed}

	for {
		// Input may also end right after a match; both are sequence boundaries.
		if r.remaining() == 0 {
			return endOfBlock(out, size, r.pos)
		}

		token, err := r.ReadByte()
		if err != nil {
			return nil, decodeError(ErrTruncated, r.pos, "token")
		}

		litLen, err := readLength(r, int(token>>4))
		if err != nil {
			return nil, decodeError(ErrTruncated, r.pos, "literal length")
		}

		start := r.pos
		literals, ok := r.next(litLen)
		if !ok {
			return nil, decodeError(ErrTruncated, start, "literals (need %d, have %d)", litLen, r.remaining())
		}
		if litLen > size-len(out) {
			return nil, decodeError(ErrSizeMismatch, start, "literals overflow output (declared %d, have %d, adding %d)", size, len(out), litLen)
		}
		out = append(out, literals...)

		// The last sequence carries literals only; input ends right after them.
		if r.remaining() == 0 {
			return endOfBlock(out, size, r.pos)
		}

		start = r.pos
		offset, ok := r.readUint16LE()
		if !ok {
			return nil, decodeError(ErrTruncated, start, "match offset")
		}
		if offset == 0 || int(offset) > len(out) {
			return nil, decodeError(ErrInvalidOffset, start, "offset %d with %d bytes decoded", offset, len(out))
		}

		matchLen, err := readLength(r, int(token&lengthMask))
		if err != nil {
			return nil, decodeError(ErrTruncated, r.pos, "match length")
		}
		matchLen += MinMatch
		if matchLen > size-len(out) {
			return nil, decodeError(ErrSizeMismatch, r.pos, "match overflows output (declared %d, have %d, adding %d)", size, len(out), matchLen)
		}

		// Source and destination overlap when offset < matchLen: copy one byte at a time
		// so bytes written earlier in this match are read again (RLE-like).
		// copy() would read stale bytes here.
		from := len(out) - int(offset)
		for i := 0; i < matchLen; i++ {
			out = append(out, out[from+i])
		}
	}
}

func endOfBlock(out []byte, size, pos int) ([]byte, error) {
	if len(out) != size {
		return nil, decodeError(ErrSizeMismatch, pos, "end of block (declared %d, decoded %d)", size, len(out))
	}

	return out, nil
}

// readLength completes a 4-bit length code. Code 15 is followed by extension
// bytes that are summed; the first byte below 255 is the last one.
func readLength(r *sliceReader, code int) (int, error) {
	n := code
	if code != lengthMask {
		return n, nil
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}

		n += int(b)
		if b != lengthStep {
			return n, nil
		}
	}
}
