package liquid

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is a single filter invocation inside a pipeline.
type Step struct {
	Name string
	Args []any
}

// Pipeline is a parsed filter chain such as `strip_html | truncate: 20`.
type Pipeline struct {
	Steps []Step
}

// ParsePipeline parses a Liquid filter chain.
//
// Arguments may be single- or double-quoted strings, integers, decimals,
// true, false, nil or null. Variable references are not supported.
// An empty expression yields a pipeline that passes its input through.
func ParsePipeline(expr string) (Pipeline, error) {
	p := &parser{src: expr}
	steps, err := p.parse()
	if err != nil {
		return Pipeline{}, fmt.Errorf("%w: %v", ErrInvalidPipeline, err)
	}
	return Pipeline{Steps: steps}, nil
}

// MustParsePipeline is like ParsePipeline but panics on error.
func MustParsePipeline(expr string) Pipeline {
	p, err := ParsePipeline(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports the first step whose filter is not registered in reg.
// A string argument holding both quote characters has no literal form and
// fails with ErrInvalidPipeline; such steps can only be built in code.
func (p Pipeline) Validate(reg *Registry) error {
	for _, s := range p.Steps {
		if _, ok := reg.Lookup(s.Name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownFilter, s.Name)
		}
		for _, a := range s.Args {
			if v, ok := a.(string); ok && strings.ContainsRune(v, '"') && strings.ContainsRune(v, '\'') {
				return fmt.Errorf("%w: %s argument %q mixes quote characters", ErrInvalidPipeline, s.Name, v)
			}
		}
	}
	return nil
}

// Render applies the steps in order, feeding each result into the next step.
func (p Pipeline) Render(reg *Registry, input any) (string, error) {
	if err := p.Validate(reg); err != nil {
		return "", err
	}

	if len(p.Steps) == 0 {
		return str(input), nil
	}

	value := input
	for _, s := range p.Steps {
		out, err := reg.Apply(s.Name, value, s.Args...)
		if err != nil {
			return "", err
		}
		value = out
	}
	return value.(string), nil
}

// String formats the pipeline back into filter-chain syntax.
// The output of a pipeline that passes Validate parses back to an equal pipeline.
func (p Pipeline) String() string {
	var b strings.Builder
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(s.Name)
		for j, a := range s.Args {
			if j == 0 {
				b.WriteString(": ")
			} else {
				b.WriteString(", ")
			}
			b.WriteString(formatArg(a))
		}
	}
	return b.String()
}

func formatArg(a any) string {
	switch v := a.(type) {
	case nil:
		return "nil"
	case string:
		if strings.Contains(v, `"`) {
			return "'" + v + "'"
		}
		return `"` + v + `"`
	default:
		return str(v)
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) parse() ([]Step, error) {
	p.skipSpace()
	if p.eof() {
		return nil, nil
	}

	var steps []Step
	for {
		step, err := p.step()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)

		p.skipSpace()
		if p.eof() {
			return steps, nil
		}
		if p.src[p.pos] != '|' {
			return nil, fmt.Errorf("expected '|' at offset %d", p.pos)
		}
		p.pos++
	}
}

func (p *parser) step() (Step, error) {
	p.skipSpace()
	name := p.ident()
	if name == "" {
		return Step{}, fmt.Errorf("expected filter name at offset %d", p.pos)
	}
	step := Step{Name: name}

	p.skipSpace()
	if p.eof() || p.src[p.pos] != ':' {
		return step, nil
	}
	p.pos++

	for {
		p.skipSpace()
		a, err := p.arg()
		if err != nil {
			return Step{}, err
		}
		step.Args = append(step.Args, a)

		p.skipSpace()
		if p.eof() || p.src[p.pos] != ',' {
			return step, nil
		}
		p.pos++
	}
}

func (p *parser) arg() (any, error) {
	if p.eof() {
		return nil, fmt.Errorf("expected argument at offset %d", p.pos)
	}

	switch c := p.src[p.pos]; {
	case c == '"' || c == '\'':
		end := strings.IndexByte(p.src[p.pos+1:], c)
		if end < 0 {
			return nil, fmt.Errorf("unterminated string at offset %d", p.pos)
		}
		s := p.src[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return s, nil
	case c == '-' || isDigit(c):
		return p.number()
	default:
		start := p.pos
		switch word := p.ident(); word {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "nil", "null":
			return nil, nil
		case "":
			return nil, fmt.Errorf("unexpected %q at offset %d", c, start)
		default:
			return nil, fmt.Errorf("variable %q at offset %d is not supported", word, start)
		}
	}
}

func (p *parser) number() (any, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	for !p.eof() && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}

	lit := p.src[start:p.pos]
	if n, err := strconv.Atoi(lit); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid number %q at offset %d", lit, start)
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c == '_' || isLetter(c) || (p.pos > start && (isDigit(c) || c == '-' || c == '?')) {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
