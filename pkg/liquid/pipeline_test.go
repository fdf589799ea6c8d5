package liquid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidkit/pkg/liquid"
)

func TestParsePipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		expected []liquid.Step
	}{
		{
			name:     "empty",
			expr:     "   ",
			expected: nil,
		},
		{
			name:     "single filter",
			expr:     "escape",
			expected: []liquid.Step{{Name: "escape"}},
		},
		{
			name: "chain with arguments",
			expr: `strip_html | truncate: 20, "…" | escape`,
			expected: []liquid.Step{
				{Name: "strip_html"},
				{Name: "truncate", Args: []any{20, "…"}},
				{Name: "escape"},
			},
		},
		{
			name: "literal kinds",
			expr: `f: 'single', "double", -3, 1.5, true, false, nil, null`,
			expected: []liquid.Step{
				{Name: "f", Args: []any{"single", "double", -3, 1.5, true, false, nil, nil}},
			},
		},
		{
			name: "quotes inside strings",
			expr: `append: "it's", '"quoted"'`,
			expected: []liquid.Step{
				{Name: "append", Args: []any{"it's", `"quoted"`}},
			},
		},
		{
			name: "pipe inside string",
			expr: `append: " | "`,
			expected: []liquid.Step{
				{Name: "append", Args: []any{" | "}},
			},
		},
		{
			name: "no spaces",
			expr: `truncate:5,''|escape`,
			expected: []liquid.Step{
				{Name: "truncate", Args: []any{5, ""}},
				{Name: "escape"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := liquid.ParsePipeline(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Steps)
		})
	}
}

func TestParsePipelineErrors(t *testing.T) {
	t.Parallel()

	exprs := []string{
		"escape |",
		"| escape",
		"truncate:",
		"truncate: 5,",
		"truncate 5",
		`append: "open`,
		"append: product.title",
		"truncate: 1.2.3",
		"truncate: -",
		"escape || strip_html",
		"truncate: @",
	}

	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			_, err := liquid.ParsePipeline(expr)
			assert.ErrorIs(t, err, liquid.ErrInvalidPipeline)
		})
	}
}

func TestPipelineRender(t *testing.T) {
	t.Parallel()

	reg := liquid.NewRegistry()

	tests := []struct {
		name     string
		expr     string
		input    any
		expected string
	}{
		{
			name:     "strip and truncate",
			expr:     `strip_html | truncate: 14`,
			input:    "<p>Hello <b>brave</b> new world</p>",
			expected: "Hello brave...",
		},
		{
			name:     "handle from title",
			expr:     `strip_html | handleize`,
			input:    "<h1>Crème Brûlée</h1>",
			expected: "creme-brulee",
		},
		{
			name:     "default then append",
			expr:     `default: "Guest" | prepend: "Hi, "`,
			input:    nil,
			expected: "Hi, Guest",
		},
		{
			name:     "pluralize count",
			expr:     `pluralize: "item"`,
			input:    3,
			expected: "items",
		},
		{
			name:     "empty pipeline passes input through",
			expr:     "",
			input:    "as is",
			expected: "as is",
		},
		{
			name:     "newlines to breaks then escape",
			expr:     "escape | newline_to_br",
			input:    "a < b\nc",
			expected: "a &lt; b<br>c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := liquid.MustParsePipeline(tt.expr).Render(reg, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPipelineRenderUnknownFilter(t *testing.T) {
	t.Parallel()

	p := liquid.MustParsePipeline("escape | upcase")
	_, err := p.Render(liquid.NewRegistry(), "x")
	assert.ErrorIs(t, err, liquid.ErrUnknownFilter)
}

func TestPipelineString(t *testing.T) {
	t.Parallel()

	expr := `strip_html | truncate: 20, "…" | default: nil | append: 'say "hi"', true`
	p := liquid.MustParsePipeline(expr)
	assert.Equal(t, expr, p.String())

	again, err := liquid.ParsePipeline(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestPipelineMixedQuoteArgument(t *testing.T) {
	t.Parallel()

	reg := liquid.NewRegistry()
	p := liquid.Pipeline{Steps: []liquid.Step{{Name: "append", Args: []any{`it's "x"`}}}}

	err := p.Validate(reg)
	assert.ErrorIs(t, err, liquid.ErrInvalidPipeline)

	_, err = p.Render(reg, "say ")
	assert.ErrorIs(t, err, liquid.ErrInvalidPipeline)

	for _, arg := range []string{`it's`, `say "x"`, ``} {
		p := liquid.Pipeline{Steps: []liquid.Step{{Name: "append", Args: []any{arg}}}}
		require.NoError(t, p.Validate(reg))

		again, err := liquid.ParsePipeline(p.String())
		require.NoError(t, err, p.String())
		assert.Equal(t, p, again)
	}
}

func TestMustParsePipelinePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { liquid.MustParsePipeline("|") })
}
