package parser

import (
	"errors"
	"path"
	"regexp"
	"strings"

	"github.com/openbr/plugin-docs/internal/types"
)

const (
	openDelimiter  = "/*!"
	closeDelimiter = "*/"

	// tagMarker introduces a tag inside an annotation block (\brief, \author, ...).
	tagMarker = `\`

	// declarationKeyword must appear in the line following a block.
	declarationKeyword = "class"
	inheritanceKeyword = "public"
)

var (
	// Annotation block followed by exactly one declaration line.
	blockRe = regexp.MustCompile(`(?s)/\*!(.*?)\*/\n(.*?)\n`)
)

var (
	// ErrNotDeclaration is reported when a block is not followed by a class declaration.
	ErrNotDeclaration = errors.New("not followed by a class declaration")

	// ErrNoTags is reported when a block contains no tags.
	ErrNoTags = errors.New("no tags")

	// ErrRegistration is reported for blocks documenting an Initializer subclass.
	ErrRegistration = errors.New("registration helper")
)

// Parser extracts plugin annotations from the source files of one module.
type Parser struct {
	module string
}

// New creates a new Parser for the given module.
func New(module string) *Parser {
	return &Parser{module: module}
}

// Module returns the module this parser was created for.
func (p *Parser) Module() string {
	return p.module
}

// ParseFile scans the content of one source file and returns the documented
// plugins in the order they appear. Blocks that cannot be documented are
// reported in Skipped rather than as errors.
func (p *Parser) ParseFile(name, content string) *FileResult {
	file := path.Join(p.module, name)
	result := &FileResult{}

	for _, block := range FindBlocks(content) {
		attrs, err := ParseBlock(block)
		if err == nil && attrs.Parent() == types.Initializer {
			err = ErrRegistration
		}
		if err != nil {
			result.Skipped = append(result.Skipped, Skipped{File: file, Line: block.Line, Reason: err})
			continue
		}

		result.Plugins = append(result.Plugins, Plugin{
			Attributes: attrs,
			File:       file,
			Line:       block.Line,
		})
	}

	return result
}

// FindBlocks returns every annotation block in content.
func FindBlocks(content string) []Block {
	var blocks []Block
	for _, m := range blockRe.FindAllStringSubmatchIndex(content, -1) {
		blocks = append(blocks, Block{
			// The comment ends where the declaration's leading newline begins.
			Comment:     content[m[0] : m[4]-1],
			Declaration: content[m[4]:m[5]],
			Line:        strings.Count(content[:m[0]], "\n") + 1,
		})
	}
	return blocks
}

// ParseBlock turns one block into its attributes.
func ParseBlock(block Block) (Attributes, error) {
	declaration := strings.TrimSpace(block.Declaration)
	if declaration == "" || !strings.Contains(declaration, declarationKeyword) {
		return nil, ErrNotDeclaration
	}

	tags, err := SplitTags(block.Comment)
	if err != nil {
		return nil, err
	}

	return Aggregate(tags, declaration), nil
}

// SplitTags splits the text between the block delimiters at every tag
// marker and drops the leading free text. Each returned segment starts with
// the tag name.
func SplitTags(comment string) ([]string, error) {
	body := strings.TrimPrefix(comment, openDelimiter)
	if end := strings.LastIndex(body, closeDelimiter); end != -1 {
		body = body[:end]
	}

	segments := strings.Split(body, tagMarker)[1:]
	if len(segments) == 0 {
		return nil, ErrNoTags
	}
	return segments, nil
}

// Aggregate groups tag segments by name and adds the Name and Parent
// attributes derived from declaration. Only the first line of a segment
// belongs to its value.
func Aggregate(tags []string, declaration string) Attributes {
	attrs := make(Attributes)

	for _, tag := range tags {
		name, rest, found := strings.Cut(tag, " ")
		if !found {
			attrs.add(strings.TrimSpace(tag), "")
			continue
		}
		value, _, _ := strings.Cut(rest, "\n")
		attrs.add(name, strings.TrimSpace(value))
	}

	attrs[types.Name] = []string{declaredName(declaration)}
	attrs[types.Parent] = []string{declaredParent(declaration)}
	return attrs
}

// declaredName returns the class name from "class Name : public Parent".
func declaredName(declaration string) string {
	if len(declaration) < len(declarationKeyword) {
		return ""
	}
	name, _, _ := strings.Cut(declaration[len(declarationKeyword):], ":")
	return strings.TrimSpace(name)
}

// declaredParent returns the text after "public" to the end of the line,
// trimmed of surrounding commas. A declaration continuing on the next line
// ("public A,") keeps only A. Without "public" the text after the class
// keyword is used.
func declaredParent(declaration string) string {
	start := len(declarationKeyword)
	if idx := strings.Index(declaration, inheritanceKeyword); idx != -1 {
		start = idx + len(inheritanceKeyword)
	}
	if len(declaration) < start {
		return ""
	}
	return strings.Trim(strings.TrimSpace(declaration[start:]), ",")
}
