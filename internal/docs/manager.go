package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// PageExt is the extension of generated module pages.
const PageExt = ".md"

// Document is a generated module page, either on disk or about to be written.
type Document struct {
	Module  string
	Path    string
	Content string
	Exists  bool // Whether the page was found on disk
}

// Manager handles the plugin source tree and the generated pages.
type Manager struct {
	fs         afero.Fs
	pluginsDir string
	outputDir  string
	exclude    map[string]bool
}

// NewManager creates a new documentation manager. Modules named in exclude
// are never listed.
func NewManager(fs afero.Fs, pluginsDir, outputDir string, exclude []string) *Manager {
	excludeMap := make(map[string]bool)
	for _, name := range exclude {
		excludeMap[name] = true
	}
	return &Manager{
		fs:         fs,
		pluginsDir: pluginsDir,
		outputDir:  outputDir,
		exclude:    excludeMap,
	}
}

// ListModules returns the module directories below the plugins root, sorted.
func (m *Manager) ListModules() ([]string, error) {
	entries, err := afero.ReadDir(m.fs, m.pluginsDir)
	if err != nil {
		return nil, fmt.Errorf("reading plugins directory: %w", err)
	}

	var modules []string
	for _, entry := range entries {
		if entry.IsDir() && !m.exclude[entry.Name()] {
			modules = append(modules, entry.Name())
		}
	}
	sort.Strings(modules)
	return modules, nil
}

// HasModule reports whether module exists and is not excluded.
func (m *Manager) HasModule(module string) bool {
	if m.exclude[module] {
		return false
	}
	ok, err := afero.DirExists(m.fs, filepath.Join(m.pluginsDir, module))
	return err == nil && ok
}

// ListPluginFiles returns the regular files directly inside a module,
// skipping hidden files.
func (m *Manager) ListPluginFiles(module string) ([]string, error) {
	entries, err := afero.ReadDir(m.fs, filepath.Join(m.pluginsDir, module))
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", module, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// ReadPluginFile returns the content of one plugin source file.
func (m *Manager) ReadPluginFile(module, file string) (string, error) {
	content, err := afero.ReadFile(m.fs, filepath.Join(m.pluginsDir, module, file))
	if err != nil {
		return "", fmt.Errorf("reading %s/%s: %w", module, file, err)
	}
	return string(content), nil
}

// PagePath returns the output path of a module page.
func (m *Manager) PagePath(module string) string {
	return filepath.Join(m.outputDir, module+PageExt)
}

// OutputPath returns the path of an arbitrary file in the output directory.
func (m *Manager) OutputPath(name string) string {
	return filepath.Join(m.outputDir, name)
}

// LoadDocument reads the current page of a module. A missing page is not an
// error; the returned document has Exists set to false.
func (m *Manager) LoadDocument(module string) (*Document, error) {
	doc := &Document{Module: module, Path: m.PagePath(module)}

	content, err := afero.ReadFile(m.fs, doc.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("reading file: %w", err)
	}

	doc.Content = string(content)
	doc.Exists = true
	return doc, nil
}

// SaveDocument writes the document to disk, creating the output directory if needed.
func (m *Manager) SaveDocument(doc *Document) error {
	if err := m.fs.MkdirAll(filepath.Dir(doc.Path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, doc.Path, []byte(doc.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", doc.Path, err)
	}
	doc.Exists = true
	return nil
}

// WriteOutputFile writes a file in the output directory.
func (m *Manager) WriteOutputFile(name, content string) error {
	return m.SaveDocument(&Document{Path: m.OutputPath(name), Content: content})
}

// ListPages returns the module names of every page in the output directory.
func (m *Manager) ListPages() ([]string, error) {
	entries, err := afero.ReadDir(m.fs, m.outputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	var pages []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PageExt) {
			continue
		}
		pages = append(pages, ExtractModuleName(entry.Name()))
	}
	return pages, nil
}

// ExtractModuleName extracts the module name from a page path.
func ExtractModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
