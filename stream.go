package lizard

import (
	"bytes"
	"io"
)

// Reader decodes a mozLz4 container read from an underlying io.Reader.
// The whole input is read and decoded on the first call to Read.
type Reader struct {
	r    io.Reader
	opts *Options
	buf  *bytes.Reader
	err  error // Sticky decode error.
}

// NewReader returns a Reader over r. Options nil means DefaultOptions.
func NewReader(r io.Reader, opts *Options) *Reader {
	return &Reader{r: r, opts: opts}
}

func (r *Reader) init() error {
	if r.buf != nil || r.err != nil {
		return r.err
	}

	out, _, err := DecompressFromReader(r.r, r.opts)
	if err != nil {
		r.err = err
		return err
	}

	r.buf = bytes.NewReader(out)

	return nil
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if err := r.init(); err != nil {
		return 0, err
	}

	return r.buf.Read(p)
}

// Len returns the number of decoded bytes not yet read, decoding first if needed.
func (r *Reader) Len() (int, error) {
	if err := r.init(); err != nil {
		return 0, err
	}

	return r.buf.Len(), nil
}
