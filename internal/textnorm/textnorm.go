// Package textnorm prepares raw OCR lines for alignment.
package textnorm

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/linealign/msa"
	"github.com/mozillazg/go-unidecode"
	"github.com/samber/lo"
)

var spaces = regexp.MustCompile(`\s+`)

// Fold transliterates line to ASCII and collapses whitespace runs to a single
// space. The gap rune is removed first, so folded text is always alignable.
func Fold(line string) string {
	norm := strings.ReplaceAll(line, string(msa.DefaultGap), "")
	// convert unicode chars to their closest ASCII spelling
	norm = unidecode.Unidecode(norm)
	norm = spaces.ReplaceAllString(norm, " ")

	return strings.TrimSpace(norm)
}

// Lines reads r and returns its non-blank lines in order. Line endings are
// stripped; other whitespace is kept.
func Lines(r io.Reader) ([]string, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	lines := lo.Map(raw, func(s string, _ int) string { return strings.TrimRight(s, "\r") })

	return lo.Filter(lines, func(s string, _ int) bool { return strings.TrimSpace(s) != "" }), nil
}

// FoldAll applies Fold to every line.
func FoldAll(lines []string) []string {
	return lo.Map(lines, func(s string, _ int) string { return Fold(s) })
}
