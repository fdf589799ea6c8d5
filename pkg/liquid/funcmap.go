package liquid

import (
	"text/template"
	"unicode"
)

// FuncMap exposes the filters of reg to text/template and html/template.
//
// Go templates append the piped value as the last argument, so
// {{ .Title | truncate 20 "…" }} calls truncate(.Title, 20, "…").
// Filters whose names are not valid template identifiers are skipped.
func FuncMap(reg *Registry) template.FuncMap {
	names := reg.Names()
	fm := make(template.FuncMap, len(names))
	for _, name := range names {
		if !isTemplateIdent(name) {
			continue
		}
		f, _ := reg.Lookup(name)
		fm[name] = templateFunc(f)
	}
	return fm
}

func templateFunc(f Filter) func(args ...any) string {
	return func(args ...any) string {
		if len(args) == 0 {
			return f(nil)
		}
		last := len(args) - 1
		return f(args[last], args[:last]...)
	}
}

func isTemplateIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
