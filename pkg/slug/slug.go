package slug

import (
	"crypto/rand"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	customReplace map[string]string
	suffixLength  int
}

func defaultConfig() *config {
	return &config{separator: "-"}
}

// MaxLength limits the slug to n characters. Zero disables the limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = max(n, 0)
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// CustomReplace applies replacements before normalization,
// for example {"&": "and", "@": "at"}. Longer keys are replaced first.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// joined with the separator: "summer-sale-x7g3k2".
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = max(length, 0)
	}
}

// Make creates a URL-safe slug from s.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.customReplace) > 0 {
		s = replaceAll(s, cfg.customReplace)
	}

	s = fold(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))

	sepLen := utf8.RuneCountInString(cfg.separator)
	lastWasSep := true // suppresses a leading separator
	count := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlnum(c) {
			if cfg.maxLength > 0 && count >= cfg.maxLength {
				break
			}
			b.WriteByte(c)
			lastWasSep = false
			count++
			continue
		}

		if lastWasSep {
			continue
		}
		if cfg.maxLength > 0 && count+sepLen >= cfg.maxLength {
			break
		}
		b.WriteString(cfg.separator)
		lastWasSep = true
		count += sepLen
	}

	result := b.String()
	if cfg.separator != "" {
		result = strings.TrimSuffix(result, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// fold decomposes s and removes combining marks.
func fold(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.M)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// Non-ASCII characters become separators anyway.
		return s
	}
	return out
}

func replaceAll(s string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func appendSuffix(result string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen)

	sepLen := utf8.RuneCountInString(cfg.separator)
	if cfg.maxLength > 0 {
		room := cfg.maxLength - sepLen - suffixLen
		if room <= 0 {
			return suffix
		}
		// The slug body is ASCII, so byte and character counts agree.
		if len(result) > room {
			result = result[:room]
			if cfg.separator != "" {
				result = strings.TrimSuffix(result, cfg.separator)
			}
		}
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

func generateSuffix(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
