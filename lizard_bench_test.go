package lizard

import (
	"bytes"
	"testing"

	"github.com/pierrec/lz4/v4"
)

var benchInput = bytes.Repeat([]byte(`{"url":"https://example.org/","title":"Example Domain","cacheKey":0},`), 1024)

func BenchmarkDecodeBlock(b *testing.B) {
	block := compressBlock(b, benchInput)
	size := uint32(len(benchInput))
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeBlock(size, block)
	}
}

func BenchmarkDecodeBlockRun(b *testing.B) {
	input := bytes.Repeat([]byte{'a'}, 1<<20)
	block := compressBlock(b, input)
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeBlock(uint32(len(input)), block)
	}
}

// BenchmarkReferenceUncompressBlock measures the reference decoder on the same input.
func BenchmarkReferenceUncompressBlock(b *testing.B) {
	block := compressBlock(b, benchInput)
	dst := make([]byte, len(benchInput))
	b.SetBytes(int64(len(benchInput)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lz4.UncompressBlock(block, dst)
	}
}
