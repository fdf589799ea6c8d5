package filters

import "strings"

// URL builds a link to path. Absolute http(s) URLs are returned as is.
// With a domain the result is an absolute https URL, otherwise a root-relative path.
func URL(path string, domain ...string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(domain) == 0 || domain[0] == "" {
		return path
	}

	return "https://" + strings.TrimRight(domain[0], "/") + path
}

// LinkTo wraps text in an anchor pointing at url.
// Raw attributes, when given, are appended to the opening tag verbatim.
func LinkTo(text, url string, attributes ...string) string {
	if text == "" || url == "" {
		return text
	}

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(url)
	b.WriteByte('"')
	writeAttributes(&b, attributes...)
	b.WriteByte('>')
	b.WriteString(text)
	b.WriteString("</a>")
	return b.String()
}

// ImgTag renders an <img> element for src with an optional alt text.
// Raw attributes are appended verbatim. An empty src yields "".
func ImgTag(src, alt string, attributes ...string) string {
	if src == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(src)
	b.WriteByte('"')
	if alt != "" {
		b.WriteString(` alt="`)
		b.WriteString(alt)
		b.WriteByte('"')
	}
	writeAttributes(&b, attributes...)
	b.WriteByte('>')
	return b.String()
}

// TagOption configures StylesheetTag and ScriptTag.
type TagOption func(*tagConfig)

type tagConfig struct {
	preload    bool
	deferred   bool
	media      string
	attributes string
}

func defaultTagConfig() tagConfig {
	return tagConfig{preload: true, deferred: true}
}

// Preload controls the <link rel="preload"> hint emitted before the tag. Enabled by default.
func Preload(enabled bool) TagOption {
	return func(c *tagConfig) { c.preload = enabled }
}

// Defer controls the defer attribute of script tags. Enabled by default.
func Defer(enabled bool) TagOption {
	return func(c *tagConfig) { c.deferred = enabled }
}

// Media sets the media attribute of stylesheet tags.
func Media(media string) TagOption {
	return func(c *tagConfig) { c.media = media }
}

// Attributes appends raw attributes to script tags.
func Attributes(attrs string) TagOption {
	return func(c *tagConfig) { c.attributes = attrs }
}

// StylesheetTag renders a <link rel="stylesheet"> element for url.
func StylesheetTag(url string, opts ...TagOption) string {
	if url == "" {
		return ""
	}
	cfg := defaultTagConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	if cfg.preload {
		b.WriteString(`<link rel="preload" as="style" href="`)
		b.WriteString(url)
		b.WriteString(`">`)
	}
	b.WriteString(`<link rel="stylesheet" href="`)
	b.WriteString(url)
	b.WriteByte('"')
	if cfg.media != "" {
		b.WriteString(` media="`)
		b.WriteString(cfg.media)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// ScriptTag renders a <script> element for url.
func ScriptTag(url string, opts ...TagOption) string {
	if url == "" {
		return ""
	}
	cfg := defaultTagConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	if cfg.preload {
		b.WriteString(`<link rel="preload" as="script" href="`)
		b.WriteString(url)
		b.WriteString(`">`)
	}
	b.WriteString(`<script src="`)
	b.WriteString(url)
	b.WriteByte('"')
	if cfg.deferred {
		b.WriteString(" defer")
	}
	writeAttributes(&b, cfg.attributes)
	b.WriteString("></script>")
	return b.String()
}

func writeAttributes(b *strings.Builder, attrs ...string) {
	for _, a := range attrs {
		if a != "" {
			b.WriteByte(' ')
			b.WriteString(a)
		}
	}
}
