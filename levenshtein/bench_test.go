package levenshtein_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/linealign/levenshtein"
)

var sinkInt int

// BenchmarkDistance_LabelLine measures a typical OCR line pair.
func BenchmarkDistance_LabelLine(b *testing.B) {
	x := "E. MOJAVE DESERT , PROVIDENCE MTS . : canyon above"
	y := "Be ‘MOJAVE DESERT, PROVIDENCE canyon “above"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt = levenshtein.Distance(x, y)
	}
}

// BenchmarkDistanceAll_Ten ranks ten 60-rune lines.
func BenchmarkDistanceAll_Ten(b *testing.B) {
	seqs := make([]string, 10)
	for i := range seqs {
		seqs[i] = strings.Repeat("ab", 30)[:60-i] + strings.Repeat("c", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInt = len(levenshtein.DistanceAll(seqs))
	}
}
