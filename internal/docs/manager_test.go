package docs

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/src/plugins/imgproc/pad.cpp":     "pad",
		"/src/plugins/imgproc/crop.cpp":    "crop",
		"/src/plugins/imgproc/.hidden.cpp": "hidden",
		"/src/plugins/io/read.cpp":         "read",
		"/src/plugins/cmake/plugins.cmake": "cmake",
		"/src/plugins/plugins.cmake":       "top level file",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	require.NoError(t, fs.MkdirAll("/src/plugins/imgproc/nested", 0755))

	return NewManager(fs, "/src/plugins", "/docs/plugins", []string{"cmake"}), fs
}

func TestListModules(t *testing.T) {
	m, _ := newTestManager(t)

	modules, err := m.ListModules()
	require.NoError(t, err)
	assert.Equal(t, []string{"imgproc", "io"}, modules)
}

func TestListModulesMissingRoot(t *testing.T) {
	m := NewManager(afero.NewMemMapFs(), "/missing", "/out", nil)
	_, err := m.ListModules()
	assert.Error(t, err)
}

func TestHasModule(t *testing.T) {
	m, _ := newTestManager(t)

	assert.True(t, m.HasModule("imgproc"))
	assert.False(t, m.HasModule("cmake"), "excluded modules are hidden")
	assert.False(t, m.HasModule("nope"))
}

func TestListPluginFiles(t *testing.T) {
	m, _ := newTestManager(t)

	files, err := m.ListPluginFiles("imgproc")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pad.cpp", "crop.cpp"}, files)

	content, err := m.ReadPluginFile("imgproc", "pad.cpp")
	require.NoError(t, err)
	assert.Equal(t, "pad", content)

	_, err = m.ReadPluginFile("imgproc", "missing.cpp")
	assert.Error(t, err)
}

func TestLoadAndSaveDocument(t *testing.T) {
	m, fs := newTestManager(t)

	doc, err := m.LoadDocument("imgproc")
	require.NoError(t, err)
	assert.False(t, doc.Exists)
	assert.Equal(t, "/docs/plugins/imgproc.md", doc.Path)

	doc.Content = "# PadTransform\n"
	require.NoError(t, m.SaveDocument(doc))
	assert.True(t, doc.Exists)

	written, err := afero.ReadFile(fs, "/docs/plugins/imgproc.md")
	require.NoError(t, err)
	assert.Equal(t, "# PadTransform\n", string(written))

	reloaded, err := m.LoadDocument("imgproc")
	require.NoError(t, err)
	assert.True(t, reloaded.Exists)
	assert.Equal(t, doc.Content, reloaded.Content)

	pages, err := m.ListPages()
	require.NoError(t, err)
	assert.Equal(t, []string{"imgproc"}, pages)
}

func TestSaveDocumentReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	m := NewManager(fs, "/src", "/out", nil)

	err := m.SaveDocument(&Document{Module: "io", Path: m.PagePath("io"), Content: "x"})
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	doc := &Document{Path: "/out/io.md", Content: "a\nb\n", Exists: true}

	assert.Empty(t, Diff(doc, "a\nb\n"))

	diff := Diff(doc, "a\nc\n")
	assert.Contains(t, diff, "--- /out/io.md")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+c")

	missing := &Document{Path: "/out/new.md"}
	assert.Contains(t, Diff(missing, "x\n"), "--- /dev/null")
}

func TestExtractModuleName(t *testing.T) {
	assert.Equal(t, "imgproc", ExtractModuleName("/docs/plugins/imgproc.md"))
	assert.Equal(t, "io", ExtractModuleName("io.md"))
}
