package lizard

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Container is a parsed mozLz4 file. Block aliases the parsed input.
type Container struct {
	DeclaredSize uint32
	Block        []byte
}

// IsMozLz4 reports whether header starts with the mozLz4 magic.
func IsMozLz4(header []byte) bool {
	return len(header) >= len(Magic) && bytes.Equal(header[:len(Magic)], []byte(Magic))
}

// ParseContainer splits data into the declared size and the compressed block.
func ParseContainer(data []byte) (Container, error) {
	if len(data) < len(Magic) {
		return Container{}, fmt.Errorf("%w: container header needs %d bytes, have %d", ErrTruncated, len(Magic), len(data))
	}

	if !IsMozLz4(data) {
		return Container{}, fmt.Errorf("%w: got %q", ErrHeaderMismatch, data[:len(Magic)])
	}

	if len(data) < HeaderSize {
		return Container{}, fmt.Errorf("%w: size prefix needs %d bytes, have %d", ErrTruncated, SizeLen, len(data)-len(Magic))
	}

	return Container{
		DeclaredSize: binary.LittleEndian.Uint32(data[len(Magic):HeaderSize]),
		Block:        data[HeaderSize:],
	}, nil
}
