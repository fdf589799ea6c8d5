package filters_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/liquidkit/pkg/filters"
)

var benchStrings = []string{
	"plain product description without markup",
	"<p>Hello <strong>World</strong> & \"friends\"</p>",
	"Line1\r\nLine2\nLine3\rLine4",
	"Ñoño & Friends: Café con leche",
	strings.Repeat("<li>item</li>\n", 100),
}

func BenchmarkEscape(b *testing.B) {
	for _, s := range benchStrings {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = filters.Escape(s)
			}
		})
	}
}

func BenchmarkStripHTML(b *testing.B) {
	for _, s := range benchStrings {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = filters.StripHTML(s)
			}
		})
	}
}

func BenchmarkNewlineToBr(b *testing.B) {
	input := strings.Repeat("Line\r\nLine\n", 50)
	for b.Loop() {
		_ = filters.NewlineToBr(input)
	}
}

func BenchmarkHandleize(b *testing.B) {
	for _, s := range benchStrings {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = filters.Handleize(s)
			}
		})
	}
}

func BenchmarkTruncate(b *testing.B) {
	ascii := strings.Repeat("a", 200)
	unicode := strings.Repeat("ñ", 200)

	b.Run("ascii", func(b *testing.B) {
		for b.Loop() {
			_ = filters.Truncate(ascii, filters.Length(50))
		}
	})
	b.Run("unicode", func(b *testing.B) {
		for b.Loop() {
			_ = filters.Truncate(unicode, filters.Length(50), filters.Ellipsis("…"))
		}
	})
}
