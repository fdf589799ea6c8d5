package filters

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// AmountPlaceholder is replaced by the formatted amount in a money format.
	AmountPlaceholder = "{{amount}}"
	// DefaultMoneyFormat is used by Money when MoneyFormat is not given.
	DefaultMoneyFormat = "$" + AmountPlaceholder
	// DefaultDecimals is the number of fraction digits Money prints.
	DefaultDecimals = 2
)

// DefaultLocale drives digit grouping and the decimal separator.
var DefaultLocale = language.AmericanEnglish

// MoneyOption configures the money filters.
type MoneyOption func(*moneyConfig)

type moneyConfig struct {
	locale   language.Tag
	decimals int
	format   string
}

// Locale sets the locale used for grouping and decimal separators.
func Locale(tag language.Tag) MoneyOption {
	return func(c *moneyConfig) { c.locale = tag }
}

// Decimals sets the number of fraction digits. Negative values are treated as 0.
func Decimals(n int) MoneyOption {
	return func(c *moneyConfig) { c.decimals = max(n, 0) }
}

// MoneyFormat sets the template Money substitutes the amount into.
// An empty format keeps the default.
func MoneyFormat(format string) MoneyOption {
	return func(c *moneyConfig) {
		if format != "" {
			c.format = format
		}
	}
}

func newMoneyConfig(opts []MoneyOption) moneyConfig {
	cfg := moneyConfig{
		locale:   DefaultLocale,
		decimals: DefaultDecimals,
		format:   DefaultMoneyFormat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Money formats amount with the locale's separators and substitutes it for
// {{amount}} in the money format: Money(1234.5) is "$1,234.50".
// NaN and infinities are formatted as zero.
func Money(amount float64, opts ...MoneyOption) string {
	cfg := newMoneyConfig(opts)
	return strings.ReplaceAll(cfg.format, AmountPlaceholder, formatAmount(amount, cfg))
}

// MoneyWithoutCurrency formats amount like Money without the surrounding format.
func MoneyWithoutCurrency(amount float64, opts ...MoneyOption) string {
	return formatAmount(amount, newMoneyConfig(opts))
}

// MoneyWithoutDecimal formats amount rounded to a whole number.
func MoneyWithoutDecimal(amount float64, opts ...MoneyOption) string {
	cfg := newMoneyConfig(opts)
	cfg.decimals = 0
	return formatAmount(amount, cfg)
}

// CentsToPrice converts an amount in cents to whole currency units.
func CentsToPrice(cents float64) float64 {
	if math.IsNaN(cents) || math.IsInf(cents, 0) {
		return 0
	}
	return cents / 100
}

// CurrencySymbol extracts the symbol from a money format such as "€{{amount}}".
// An empty result falls back to "$".
func CurrencySymbol(format string) string {
	if format == "" {
		format = DefaultMoneyFormat
	}
	if symbol := strings.TrimSpace(strings.ReplaceAll(format, AmountPlaceholder, "")); symbol != "" {
		return symbol
	}
	return "$"
}

func formatAmount(amount float64, cfg moneyConfig) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return message.NewPrinter(cfg.locale).Sprint(number.Decimal(amount, number.Scale(cfg.decimals)))
}
