// Package liquid adapts the filters package to template hosts.
//
// Template engines call filters with loosely typed values: the piped input may
// be nil, a string, a number or any other value, and optional arguments may be
// missing. A Filter receives those raw values and maps them onto the typed
// functions of package filters, so host glue never has to know the defaulting
// rules of individual filters.
//
// # Registry
//
// NewRegistry returns a registry with the standard filters registered under
// their Liquid names:
//
//	reg := liquid.NewRegistry()
//	out, err := reg.Apply("truncate", "Hello World", 8)
//	// out == "Hello...", err == nil
//
// Custom filters can be added with Register. The registry is safe for
// concurrent use.
//
// # Pipelines
//
// ParsePipeline understands Liquid filter-chain syntax:
//
//	p, err := liquid.ParsePipeline(`strip_html | truncate: 20, "…" | escape`)
//	out, err := p.Render(reg, "<p>Some long product description</p>")
//
// # Go templates
//
// FuncMap exposes a registry to text/template and html/template. Go templates
// pass the piped value as the last argument, which FuncMap accounts for:
//
//	{{ .Title | truncate 20 }}
//
// # Presets
//
// LoadPresets reads named pipelines from YAML:
//
//	card_title: "strip_html | truncate: 40"
//	product_handle: handleize
package liquid
