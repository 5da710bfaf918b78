package http

import (
	"errors"
	"testing"
)

func BenchmarkResponse(b *testing.B) {
	resp := NewResponse()

	b.Run("String", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			resp.Clear().String("Hello, world!")
		}
	})

	b.Run("JSON", func(b *testing.B) {
		model := map[string]int{"hello": 1, "world": 2}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			resp.Clear().JSON(model)
		}
	})

	b.Run("Error", func(b *testing.B) {
		err := errors.New("some crap happened, unable to recover")
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			resp.Clear().Error(err)
		}
	})
}
