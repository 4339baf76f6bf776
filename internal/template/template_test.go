package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleTitle(t *testing.T) {
	tests := []struct {
		module   string
		expected string
	}{
		{"imgproc", "Imgproc"},
		{"classification", "Classification"},
		{"io", "i/o"},
		{"metadata", "Metadata"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ModuleTitle(tt.module), "ModuleTitle(%q)", tt.module)
	}
}

func TestBuildIndexData(t *testing.T) {
	data := BuildIndexData([]*generator.Result{
		{Module: "imgproc", Plugins: []string{"CropTransform", "PadTransform"}},
		{Module: "io"},
	})

	require.Len(t, data.Modules, 2)
	assert.Equal(t, 2, data.Total)
	assert.Equal(t, "Imgproc", data.Modules[0].Title)
	assert.Equal(t, "imgproc.md", data.Modules[0].Page)
	assert.True(t, data.Modules[0].HasPlugins())
	assert.False(t, data.Modules[1].HasPlugins())
}

func TestRenderDefaultIndex(t *testing.T) {
	e := New()
	require.NoError(t, e.LoadIndexTemplate(""))

	data := BuildIndexData([]*generator.Result{
		{Module: "imgproc", Plugins: []string{"CropTransform", "PadTransform"}},
		{Module: "io"},
	})

	out, err := e.Render(IndexTemplateName, data)
	require.NoError(t, err)

	assert.Contains(t, out, "2 plugins in 2 modules.")
	assert.Contains(t, out, "## [Imgproc](imgproc.md)\n\n")
	assert.Contains(t, out, "* [CropTransform](imgproc.md#croptransform)\n* [PadTransform](imgproc.md#padtransform)\n")
	assert.Contains(t, out, "No documented plugins.")
}

func TestLoadIndexTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.md.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{range .Modules}}{{moduleTitle .Name | upper}};{{end}}`), 0644))

	e := New()
	require.NoError(t, e.LoadIndexTemplate(path))

	out, err := e.Render(IndexTemplateName, BuildIndexData([]*generator.Result{{Module: "io"}, {Module: "gallery"}}))
	require.NoError(t, err)
	assert.Equal(t, "I/O;GALLERY;", out)
}

func TestRenderErrors(t *testing.T) {
	e := New()

	_, err := e.Render("missing", nil)
	assert.ErrorContains(t, err, `template "missing" not found`)

	assert.Error(t, e.LoadString("bad", "{{.Unclosed"))
	assert.Error(t, e.LoadFile("nofile", filepath.Join(t.TempDir(), "nope.tmpl")))
}
