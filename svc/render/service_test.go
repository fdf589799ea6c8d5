package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/liquidkit/pkg/liquid"
	"github.com/dmitrymomot/liquidkit/svc/render"
)

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewServiceLoadsPresetsFile(t *testing.T) {
	t.Parallel()

	path := writePresets(t, "card_title: \"strip_html | truncate: 8\"\nslug: handleize\n")
	svc, err := render.NewService(render.Config{PresetsFile: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"card_title", "slug"}, svc.Presets())

	out, err := svc.Render(context.Background(), "Crème Brûlée", "", "slug")
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee", out)
}

func TestNewServiceRejectsInvalidPresets(t *testing.T) {
	t.Parallel()

	path := writePresets(t, "broken: \"upcase\"\n")
	_, err := render.NewService(render.Config{PresetsFile: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, liquid.ErrInvalidPresets)

	_, err = render.NewService(render.Config{PresetsFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, liquid.ErrInvalidPresets)
}

func TestServiceApply(t *testing.T) {
	t.Parallel()

	reg := liquid.NewRegistry()
	reg.Register("shout", func(input any, _ ...any) string {
		s, _ := input.(string)
		return s + "!"
	})
	svc, err := render.NewService(render.Config{}, render.WithRegistry(reg))
	require.NoError(t, err)

	out, err := svc.Apply(context.Background(), "shout", "hey")
	require.NoError(t, err)
	assert.Equal(t, "hey!", out)

	out, err = svc.Render(context.Background(), "<b>hey</b>", "strip_html | shout", "")
	require.NoError(t, err)
	assert.Equal(t, "hey!", out)

	_, err = svc.Apply(context.Background(), "whisper", "hey")
	assert.ErrorIs(t, err, liquid.ErrUnknownFilter)

	_, err = svc.Render(context.Background(), "x", "escape", "p")
	assert.ErrorIs(t, err, render.ErrConflictingSource)

	assert.Empty(t, svc.Presets())
}

func TestServicePipelineCache(t *testing.T) {
	t.Parallel()

	reg := liquid.NewRegistry()
	svc, err := render.NewService(render.Config{PipelineCacheSize: 2}, render.WithRegistry(reg))
	require.NoError(t, err)

	out, err := svc.Render(context.Background(), "x", "shout", "")
	assert.ErrorIs(t, err, liquid.ErrInvalidPipeline)
	assert.Empty(t, out)

	// Invalid pipelines are not cached, so registering the filter later fixes the expression.
	reg.Register("shout", func(input any, _ ...any) string {
		s, _ := input.(string)
		return s + "!"
	})
	out, err = svc.Render(context.Background(), "x", "shout", "")
	require.NoError(t, err)
	assert.Equal(t, "x!", out)

	out, err = svc.Render(context.Background(), "y", "shout", "")
	require.NoError(t, err)
	assert.Equal(t, "y!", out)
}
