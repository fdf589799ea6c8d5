// Package slug turns arbitrary text into URL-safe handles.
//
// The text is lowercased, decomposed with Unicode canonical decomposition (NFD)
// and stripped of combining marks, so "Café" becomes "cafe" and "Ñoño" becomes
// "nono". Every run of characters that are not ASCII letters or digits becomes a
// single separator, and separators never lead or trail the result. Characters
// without an ASCII base letter (CJK, emoji, "ß", "ø") are treated as separators.
//
// # Usage
//
//	import "github.com/dmitrymomot/liquidkit/pkg/slug"
//
//	slug.Make("Ñoño & Friends")
//	// "nono-friends"
//
//	slug.Make("Summer Sale 2025",
//		slug.MaxLength(12),
//		slug.CustomReplace(map[string]string{"&": "and"}),
//	)
//	// "summer-sale"
//
// # Options
//
//   - MaxLength: maximum slug length in characters (0 means unlimited)
//   - Separator: separator between words (default "-")
//   - CustomReplace: string replacements applied before normalization
//   - WithSuffix: random lowercase alphanumeric suffix to reduce collisions
//
// All functions are safe for concurrent use. Suffixes are drawn from crypto/rand.
package slug
