package fpaq0f2

import (
	"math/rand"
	"strings"
	"testing"
)

func BenchmarkCompressText(b *testing.B) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200))
	out := make([]byte, len(text)+128)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(text, out)
	}
}

func BenchmarkCompressRandom(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 1<<16)
	rng.Read(buf)
	out := make([]byte, len(buf)+len(buf)/16+128)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compress(buf, out)
	}
}

func BenchmarkDecompressText(b *testing.B) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200))
	out := make([]byte, len(text)+128)
	n := Compress(text, out)
	compressed := out[:n]
	back := make([]byte, len(text))
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decompress(compressed, back)
	}
}
