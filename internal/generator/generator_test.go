package generator

import (
	"strings"
	"testing"

	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/parser"
	"github.com/openbr/plugin-docs/internal/render"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const padSource = `/*!
 * \brief Pads an image.
 * \author Josh Klontz \cite jklontz
 */
class PadTransform : public UntrainableTransform
{
};

/*!
 * \brief Registers imgproc plugins.
 */
class ImgprocInitializer : public Initializer
{
};
`

const cropSource = `/*!
 * \brief Crops an image.
 * \see PadTransform
 */
class CropTransform : public PadTransform
{
};

/*!
 * \brief Duplicate of PadTransform, defined later.
 */
class PadTransform : public UntrainableTransform
{
};
`

func newTestGenerator(t *testing.T) (*Generator, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/plugins/imgproc/a_pad.cpp":   padSource,
		"/plugins/imgproc/b_crop.cpp":  cropSource,
		"/plugins/io/empty.cpp":        "// no annotations\n",
		"/plugins/cmake/plugins.cmake": "/*!\n * \\brief ignored\n */\nclass Ignored : public Transform\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	manager := docs.NewManager(fs, "/plugins", "/out", []string{"cmake"})
	return New(manager, render.New(""), nil), fs
}

func TestRenderModule(t *testing.T) {
	g, _ := newTestGenerator(t)

	result, err := g.RenderModule("imgproc")
	require.NoError(t, err)

	assert.Equal(t, []string{"CropTransform", "PadTransform"}, result.Plugins)
	assert.True(t, strings.HasPrefix(result.Content, "# CropTransform\n"))
	assert.Contains(t, result.Content, "* **inherits:** [PadTransform](#padtransform)\n")
	assert.Contains(t, result.Content, "Duplicate of PadTransform, defined later.")
	assert.NotContains(t, result.Content, "Pads an image.")
	assert.NotContains(t, result.Content, "ImgprocInitializer")

	require.Len(t, result.Skipped, 1)
	assert.ErrorIs(t, result.Skipped[0].Reason, parser.ErrRegistration)
	assert.Equal(t, "imgproc/a_pad.cpp", result.Skipped[0].File)
}

func TestRenderModuleUnknown(t *testing.T) {
	g, _ := newTestGenerator(t)

	_, err := g.RenderModule("cmake")
	assert.Error(t, err)
	_, err = g.RenderModule("missing")
	assert.Error(t, err)
}

func TestRenderAll(t *testing.T) {
	g, _ := newTestGenerator(t)

	results, err := g.RenderAll()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "imgproc", results[0].Module)
	assert.Equal(t, "io", results[1].Module)
	assert.Empty(t, results[1].Content)
}

func TestUpdateModule(t *testing.T) {
	g, fs := newTestGenerator(t)

	result, changed, err := g.UpdateModule("io")
	require.NoError(t, err)
	assert.True(t, changed, "empty modules still get a page")
	assert.Empty(t, result.Content)

	exists, err := afero.Exists(fs, "/out/io.md")
	require.NoError(t, err)
	assert.True(t, exists)

	_, changed, err = g.UpdateModule("io")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCheck(t *testing.T) {
	g, fs := newTestGenerator(t)

	stale, err := g.Check()
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.True(t, stale[0].Missing)

	_, _, err = g.UpdateModule("imgproc")
	require.NoError(t, err)
	_, _, err = g.UpdateModule("io")
	require.NoError(t, err)

	stale, err = g.Check()
	require.NoError(t, err)
	assert.Empty(t, stale)

	require.NoError(t, afero.WriteFile(fs, "/out/io.md", []byte("hand edited\n"), 0644))
	stale, err = g.Check()
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "io", stale[0].Module)
	assert.False(t, stale[0].Missing)
	assert.Contains(t, stale[0].Diff, "-hand edited")
}

func TestOrphans(t *testing.T) {
	g, fs := newTestGenerator(t)

	for _, name := range []string{"/out/io.md", "/out/index.md", "/out/removed.md"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0644))
	}

	orphans, err := g.Orphans("index.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"removed"}, orphans)
}
