package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Document summarizes a Markdown question file.
type Document struct {
	Title       string
	Headings    int
	FrontMatter map[string]any
}

var engine = goldmark.New()

// Inspect strips optional front matter and reports the first level-one heading.
func Inspect(source []byte) (Document, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	doc := Document{FrontMatter: meta}
	root := engine.Parser().Parse(text.NewReader(body))
	err = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		doc.Headings++
		if heading.Level == 1 && doc.Title == "" {
			doc.Title = string(heading.Text(body))
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return Document{}, fmt.Errorf("walk markdown: %w", err)
	}
	return doc, nil
}
