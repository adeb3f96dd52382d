package caret

import (
	"strings"
	"testing"
)

func BenchmarkFixCursor_LongExpression(b *testing.B) {
	text := strings.Repeat("123,456×sin⁻¹(0.5)+", 200)
	n := len([]rune(text))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FixCursor(text, (i*7)%n, ",")
	}
}

func BenchmarkTokenLengthAhead(b *testing.B) {
	text := strings.Repeat("2×cos(", 500)
	n := len([]rune(text))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TokenLengthAhead(text, n)
	}
}
