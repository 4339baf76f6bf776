// Package types defines the tag names and base type names shared by the parser and renderer.
package types

// Tag names recognised in annotation blocks.
const (
	Brief    = "brief"
	Author   = "author"
	See      = "see"
	Property = "property"
)

// Synthesized attribute keys. They are derived from the class declaration
// following a block, never authored as tags.
const (
	Name   = "Name"
	Parent = "Parent"
)

// Initializer is the parent type of registration helpers. Blocks declaring
// it are internal and never documented.
const Initializer = "Initializer"

// abstractions are the base types that have their own API reference page.
var abstractions = map[string]bool{
	"Transform":                    true,
	"UntrainableTransform":         true,
	"MetaTransform":                true,
	"UntrainableMetaTransform":     true,
	"MetadataTransform":            true,
	"UntrainableMetadataTransform": true,
	"TimeVaryingTransform":         true,
	"Distance":                     true,
	"UntrainableDistance":          true,
	"Output":                       true,
	"MatrixOutput":                 true,
	"Format":                       true,
	"Gallery":                      true,
	"FileGallery":                  true,
	"Representation":               true,
	"Classifier":                   true,
}

// IsAbstraction reports whether name is one of the documented base types.
func IsAbstraction(name string) bool {
	return abstractions[name]
}
