package filters

import "unicode/utf8"

const (
	// DefaultTruncateLength is the maximum length used when Length is not given.
	DefaultTruncateLength uint32 = 50
	// DefaultEllipsis is appended to truncated text when Ellipsis is not given.
	DefaultEllipsis = "..."
)

// TruncateOption configures Truncate.
type TruncateOption func(*truncateConfig)

type truncateConfig struct {
	length   uint64
	ellipsis string
}

// Length sets the maximum length of the result, in characters.
func Length(n uint32) TruncateOption {
	return func(c *truncateConfig) { c.length = uint64(n) }
}

// Ellipsis sets the string appended to truncated text.
// An empty ellipsis is valid and cuts the text without a marker.
func Ellipsis(s string) TruncateOption {
	return func(c *truncateConfig) { c.ellipsis = s }
}

// Truncate shortens text to at most the configured number of characters,
// counting the ellipsis. Text that already fits is returned unchanged.
// Lengths are counted in Unicode code points, not bytes.
func Truncate(text string, opts ...TruncateOption) string {
	cfg := truncateConfig{
		length:   uint64(DefaultTruncateLength),
		ellipsis: DefaultEllipsis,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// For ASCII input byte length equals character count.
	if isASCII(text) && isASCII(cfg.ellipsis) {
		if uint64(len(text)) <= cfg.length {
			return text
		}
		// Below len(text), so the length fits in an int.
		cut := max(int(cfg.length)-len(cfg.ellipsis), 0)
		return text[:cut] + cfg.ellipsis
	}

	if uint64(utf8.RuneCountInString(text)) <= cfg.length {
		return text
	}

	cut := max(int(cfg.length)-utf8.RuneCountInString(cfg.ellipsis), 0)

	end, n := 0, 0
	for i := range text {
		if n == cut {
			end = i
			break
		}
		n++
	}
	return text[:end] + cfg.ellipsis
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
