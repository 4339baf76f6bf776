package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transformSource = `/*!
 * \ingroup transforms
 * \brief Crops the image
 * \author Josh Klontz \cite jklontz
 * \property int x Left edge
 */
class CropTransform : public UntrainableTransform
{
};

/*!
 * \brief Registers transforms
 */
class TransformInitializer : public Initializer
{
};
`

// setupProject writes a plugin tree and config file and returns the config
// path and output directory.
func setupProject(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("PLUGIN_DOCS_PLUGINS_DIR", "")
	t.Setenv("PLUGIN_DOCS_OUTPUT_DIR", "")

	root := t.TempDir()
	plugins := filepath.Join(root, "plugins")
	output := filepath.Join(root, "docs")

	require.NoError(t, os.MkdirAll(filepath.Join(plugins, "imgproc"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(plugins, "cmake"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(plugins, "imgproc", "crop.cpp"), []byte(transformSource), 0644))

	cfg := "paths:\n  plugins: " + plugins + "\n  output: " + output + "\n"
	cfgPath := filepath.Join(root, "plugin-docs.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	return cfgPath, output
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, noColor, updateIndex, manageIssue = false, true, false, false
	showDiff = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateAll(t *testing.T) {
	cfgPath, _ := setupProject(t)

	out, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "=== imgproc ===\n# CropTransform\n\nCrops the image\n\n")
	assert.Contains(t, out, "* **file:** imgproc/crop.cpp\n")
	assert.Contains(t, out, "x | int | Left edge\n")
	assert.NotContains(t, out, "TransformInitializer")
	assert.NotContains(t, out, "=== cmake ===")
}

func TestGenerateUnknownModule(t *testing.T) {
	cfgPath, _ := setupProject(t)

	_, err := execute(t, "generate", "gallery", "--config", cfgPath)
	assert.ErrorContains(t, err, `module "gallery" not found`)
}

func TestUpdateThenCheck(t *testing.T) {
	cfgPath, output := setupProject(t)

	_, err := execute(t, "check", "--config", cfgPath)
	assert.ErrorIs(t, err, errStale)

	out, err := execute(t, "update", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 modules, 0 unchanged\n")

	page, err := os.ReadFile(filepath.Join(output, "imgproc.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "# CropTransform")

	out, err = execute(t, "update", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 0 modules, 1 unchanged\n")

	out, err = execute(t, "check", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "All pages are up to date")
}

func TestCheckReportsDiffAndOrphans(t *testing.T) {
	cfgPath, output := setupProject(t)

	require.NoError(t, os.MkdirAll(output, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(output, "imgproc.md"), []byte("# Old\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(output, "removed.md"), []byte("# Gone\n"), 0644))

	out, err := execute(t, "check", "--config", cfgPath)
	assert.ErrorIs(t, err, errStale)
	assert.Contains(t, out, "-# Old\n")
	assert.Contains(t, out, "+# CropTransform\n")
	assert.Contains(t, out, "### Stale Pages (1)")
	assert.Contains(t, out, "- [ ] `removed`")
}

func TestUpdateWithIndex(t *testing.T) {
	cfgPath, output := setupProject(t)

	_, err := execute(t, "update", "--index", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(output, "index.md"))

	// The index page is not an orphan.
	_, err = execute(t, "check", "--config", cfgPath)
	assert.NoError(t, err)
}

func TestValidateBlocks(t *testing.T) {
	cfgPath, _ := setupProject(t)

	out, err := execute(t, "validate", "blocks", "imgproc", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imgproc/crop.cpp:11: registration helper\n")
	assert.Contains(t, out, "1 plugins documented, 1 blocks skipped\n")
}

func TestValidateConfig(t *testing.T) {
	cfgPath, _ := setupProject(t)

	out, err := execute(t, "validate", "config", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Config is valid")

	_, err = execute(t, "validate", "config", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "plugin-docs version")
}
