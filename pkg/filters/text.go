package filters

import "github.com/dmitrymomot/liquidkit/pkg/slug"

// Append returns input followed by value.
func Append(input, value string) string {
	if input == "" {
		return value
	}
	if value == "" {
		return input
	}
	return input + value
}

// Prepend returns value followed by input.
func Prepend(input, value string) string {
	if value == "" {
		return input
	}
	if input == "" {
		return value
	}
	return value + input
}

// Handleize converts text into a lowercase, hyphen-delimited ASCII handle.
// Accents are removed through canonical decomposition, so "Café" becomes "cafe".
func Handleize(text string) string {
	if text == "" {
		return ""
	}
	return slug.Make(text)
}

// Pluralize returns singular when count is 1 and the plural form otherwise.
// Without an explicit plural the singular gets an "s" suffix. Zero is plural.
func Pluralize(count int, singular string, plural ...string) string {
	if count == 1 {
		return singular
	}
	if len(plural) > 0 {
		return plural[0]
	}
	return singular + "s"
}

// DefaultValue returns defaultValue when value is empty.
func DefaultValue(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
