package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidkit/pkg/liquid"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, liquid.NewRegistry().Names(), lines)
}

func TestApplyCommand(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"pipeline from stdin", "<p>Hello World</p>\n", []string{"apply", "--pipeline", "strip_html | truncate: 8"}, "Hello...\n"},
		{"short flag", "Ñoño & Friends", []string{"apply", "-p", "handleize"}, "nono-friends\n"},
		{"keep newline", "a\n", []string{"apply", "-p", "newline_to_br", "--keep-newline"}, "a<br>\n"},
		{"no pipeline", "as is\r\n", []string{"apply"}, "as is\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestApplyCommandFileAndPreset(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "title.html")
	presets := filepath.Join(dir, "presets.yaml")
	require.NoError(t, os.WriteFile(input, []byte("<h1>Crème Brûlée</h1>"), 0o600))
	require.NoError(t, os.WriteFile(presets, []byte("handle: \"strip_html | handleize\"\n"), 0o600))

	out, err := execute(t, "", "apply", "--preset", "handle", "--presets", presets, input)
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee\n", out)

	_, err = execute(t, "", "apply", "--preset", "missing", "--presets", presets, input)
	assert.ErrorIs(t, err, liquid.ErrUnknownPreset)
}

func TestApplyCommandErrors(t *testing.T) {
	_, err := execute(t, "x", "apply", "-p", "strip_html |")
	assert.ErrorIs(t, err, liquid.ErrInvalidPipeline)

	_, err = execute(t, "x", "apply", "-p", "escape", "--preset", "card")
	assert.Error(t, err)

	_, err = execute(t, "", "apply", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
