package parser

import "github.com/openbr/plugin-docs/internal/types"

// Attributes maps a tag name to its values in the order they were written.
// The synthesized Name and Parent keys are always present after parsing.
type Attributes map[string][]string

// Values returns every value recorded for tag, or nil if the tag is absent.
func (a Attributes) Values(tag string) []string {
	return a[tag]
}

// First returns the first value recorded for tag, or "" if the tag is absent.
func (a Attributes) First(tag string) string {
	if values := a[tag]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// Name returns the declared class name.
func (a Attributes) Name() string {
	return a.First(types.Name)
}

// Parent returns the first declared base class.
func (a Attributes) Parent() string {
	return a.First(types.Parent)
}

func (a Attributes) add(tag, value string) {
	a[tag] = append(a[tag], value)
}

// Block is one annotation block found in a source file.
type Block struct {
	Comment     string // Comment text including the /*! and */ delimiters
	Declaration string // Line immediately following the comment, untrimmed
	Line        int    // Line number of the opening delimiter
}

// Plugin is a documented plugin parsed from an annotation block.
type Plugin struct {
	Attributes Attributes
	File       string // Path relative to the plugins root (e.g. "imgproc/slidingwindow.cpp")
	Line       int
}

// Name returns the plugin's declared class name.
func (p Plugin) Name() string {
	return p.Attributes.Name()
}

// Skipped describes a block that was not turned into a plugin.
type Skipped struct {
	File   string
	Line   int
	Reason error // One of ErrNotDeclaration, ErrNoTags or ErrRegistration
}

// FileResult holds everything found in one source file.
type FileResult struct {
	Plugins []Plugin
	Skipped []Skipped
}
