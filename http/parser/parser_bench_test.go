package parser

import (
	"strings"
	"testing"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/internal/requestgen"
)

func BenchmarkParser(b *testing.B) {
	parser := New(config.Default())

	b.Run("5 headers", func(b *testing.B) {
		data := requestgen.Generate(strings.Repeat("a", 500), requestgen.Headers(5))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = parser.ParseBytes(data)
		}
	})

	b.Run("50 headers", func(b *testing.B) {
		data := requestgen.Generate(strings.Repeat("a", 500), requestgen.Headers(50))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = parser.ParseBytes(data)
		}
	})

	b.Run("with body", func(b *testing.B) {
		data := requestgen.GenerateWithBody("", requestgen.Headers(10), strings.Repeat("b", 4096))
		b.SetBytes(int64(len(data)))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = parser.ParseBytes(data)
		}
	})
}
