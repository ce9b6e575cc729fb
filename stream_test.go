package lizard

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func TestReader(t *testing.T) {
	input := bytes.Repeat([]byte("sessionstore "), 200)
	data := wrap(uint32(len(input)), compressBlock(t, input))

	r := NewReader(iotest.OneByteReader(bytes.NewReader(data)), nil)
	n, err := r.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != len(input) {
		t.Fatalf("Len() = %d, want %d", n, len(input))
	}

	got, err := io.ReadAll(iotest.HalfReader(r))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, got) {
		t.Fatalf("got %d bytes, want %d", len(got), len(input))
	}
}

func TestReaderStickyError(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("not a mozlz4 file")), nil)

	buf := make([]byte, 16)
	for i := 0; i < 2; i++ {
		if _, err := r.Read(buf); !errors.Is(err, ErrHeaderMismatch) {
			t.Fatalf("Read() #%d error = %v, want ErrHeaderMismatch", i, err)
		}
	}
}

func TestReaderUnderlyingError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom), nil)
	if _, err := r.Read(make([]byte, 1)); !errors.Is(err, boom) {
		t.Fatalf("Read() error = %v, want %v", err, boom)
	}
}

func TestDecompressFromReader(t *testing.T) {
	data := wrap(5, append([]byte{0x50}, "hello"...))

	out, consumed, err := DecompressFromReader(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Fatalf("got %q", out)
	}
	if consumed != int64(len(data)) {
		t.Fatalf("consumed = %d, want %d", consumed, len(data))
	}
}

func TestDecompressFromReaderNil(t *testing.T) {
	if _, _, err := DecompressFromReader(nil, nil); err != ErrNilReader {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}
