// Package filters implements the string filters used by storefront templates:
// HTML escaping, tag stripping, newline handling, truncation, handle (slug)
// generation, concatenation, pluralization and default values. Asset tag
// builders and money formatting (via golang.org/x/text) sit alongside them.
//
// Every filter is a pure function. None of them returns an error: empty input
// produces empty output (or the supplied default) and all other input has a
// defined result. Filters are safe for concurrent use.
//
// # Usage
//
//	import "github.com/dmitrymomot/liquidkit/pkg/filters"
//
//	filters.Escape(`<b>"Rock" & Roll</b>`)
//	// "&lt;b&gt;&quot;Rock&quot; &amp; Roll&lt;/b&gt;"
//
//	filters.Handleize("Ñoño & Friends")
//	// "nono-friends"
//
//	filters.Truncate("Hello World", filters.Length(8))
//	// "Hello..."
//
//	filters.Pluralize(0, "item")
//	// "items"
//
//	filters.Money(1234.5)
//	// "$1,234.50"
//
// # Absent values
//
// Template hosts distinguish a missing value from an empty string. The core
// functions take plain strings and treat "" as missing; the host adapter in
// package liquid maps nil to "" before calling them. Where a missing optional
// argument differs from an empty one (the truncate ellipsis, the pluralize
// plural form) the argument is passed as an option or a variadic parameter.
package filters
