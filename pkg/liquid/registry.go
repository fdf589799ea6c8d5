package liquid

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/liquidkit/pkg/filters"
)

// Filter is the host calling convention: the piped value followed by the
// filter arguments, any of which may be nil. Filters always return a string.
type Filter func(input any, args ...any) string

// Registry maps filter names to filters.
type Registry struct {
	mu      sync.RWMutex
	filters map[string]Filter
}

// NewRegistry returns a registry holding the standard filter set.
func NewRegistry() *Registry {
	r := &Registry{filters: make(map[string]Filter, len(standardFilters))}
	for name, f := range standardFilters {
		r.filters[name] = f
	}
	return r
}

// Register adds or replaces a filter.
// Panics on an empty name or nil filter, as both are programming errors.
func (r *Registry) Register(name string, f Filter) {
	if name == "" {
		panic("liquid: Register called with empty filter name")
	}
	if f == nil {
		panic(fmt.Sprintf("liquid: Register called with nil filter %q", name))
	}

	r.mu.Lock()
	r.filters[name] = f
	r.mu.Unlock()
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Filter, bool) {
	r.mu.RLock()
	f, ok := r.filters[name]
	r.mu.RUnlock()
	return f, ok
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Apply runs the named filter. The only possible error is ErrUnknownFilter.
func (r *Registry) Apply(name string, input any, args ...any) (string, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return f(input, args...), nil
}

var standardFilters = map[string]Filter{
	"escape": func(input any, _ ...any) string {
		return filters.Escape(str(input))
	},
	"strip_html": func(input any, _ ...any) string {
		return filters.StripHTML(str(input))
	},
	"strip_newlines": func(input any, _ ...any) string {
		return filters.StripNewlines(str(input))
	},
	"newline_to_br": func(input any, _ ...any) string {
		return filters.NewlineToBr(str(input))
	},
	"append": func(input any, args ...any) string {
		return filters.Append(str(input), str(arg(args, 0)))
	},
	"prepend": func(input any, args ...any) string {
		return filters.Prepend(str(input), str(arg(args, 0)))
	},
	"handleize": func(input any, _ ...any) string {
		return filters.Handleize(str(input))
	},
	"truncate":  truncate,
	"pluralize": pluralize,
	"default": func(input any, args ...any) string {
		return filters.DefaultValue(str(input), str(arg(args, 0)))
	},
	"url": func(input any, args ...any) string {
		return filters.URL(str(input), str(arg(args, 0)))
	},
	"link_to": func(input any, args ...any) string {
		return filters.LinkTo(str(input), str(arg(args, 0)), str(arg(args, 1)))
	},
	"stylesheet_tag": func(input any, args ...any) string {
		return filters.StylesheetTag(str(input),
			filters.Media(str(arg(args, 0))),
			filters.Preload(toBool(arg(args, 1), true)),
		)
	},
	"script_tag": func(input any, args ...any) string {
		return filters.ScriptTag(str(input),
			filters.Attributes(str(arg(args, 0))),
			filters.Defer(toBool(arg(args, 1), true)),
			filters.Preload(toBool(arg(args, 2), true)),
		)
	},
	"img_tag": func(input any, args ...any) string {
		return filters.ImgTag(str(input), str(arg(args, 0)), str(arg(args, 1)))
	},
	"money": func(input any, args ...any) string {
		opts := append(moneyOptions(arg(args, 1), arg(args, 2)), filters.MoneyFormat(str(arg(args, 0))))
		return filters.Money(amount(input), opts...)
	},
	"money_without_currency": func(input any, args ...any) string {
		return filters.MoneyWithoutCurrency(amount(input), moneyOptions(arg(args, 0), arg(args, 1))...)
	},
	"money_without_decimal": func(input any, args ...any) string {
		return filters.MoneyWithoutDecimal(amount(input), moneyOptions(nil, arg(args, 0))...)
	},
	"cents_to_price": func(input any, _ ...any) string {
		return strconv.FormatFloat(filters.CentsToPrice(amount(input)), 'f', -1, 64)
	},
	"currency_symbol": func(input any, _ ...any) string {
		return filters.CurrencySymbol(str(input))
	},
}

// amount reads a money input. Values that are not numbers count as zero.
func amount(v any) float64 {
	f, _ := toFloat(v)
	return f
}

// moneyOptions builds options from the optional decimals and locale arguments.
// An unparseable locale keeps the default.
func moneyOptions(decimals, locale any) []filters.MoneyOption {
	opts := make([]filters.MoneyOption, 0, 3)
	if n, ok := toInt(decimals); ok {
		opts = append(opts, filters.Decimals(n))
	}
	if s, ok := toString(locale); ok {
		if tag, err := language.Parse(s); err == nil {
			opts = append(opts, filters.Locale(tag))
		}
	}
	return opts
}

// truncate handles a missing input before any option parsing; an empty
// string still goes through filters.Truncate.
func truncate(input any, args ...any) string {
	text, ok := toString(input)
	if !ok {
		return ""
	}

	opts := make([]filters.TruncateOption, 0, 2)
	if n, ok := toUint32(arg(args, 0)); ok {
		opts = append(opts, filters.Length(n))
	}
	if e, ok := toString(arg(args, 1)); ok {
		opts = append(opts, filters.Ellipsis(e))
	}
	return filters.Truncate(text, opts...)
}

// pluralize takes the count as input: {{ count | pluralize: "item", "items" }}.
// A count that is not a number is plural.
func pluralize(input any, args ...any) string {
	count, ok := toInt(input)
	if !ok {
		count = 0
	}
	singular := str(arg(args, 0))
	if plural, ok := toString(arg(args, 1)); ok {
		return filters.Pluralize(count, singular, plural)
	}
	return filters.Pluralize(count, singular)
}
