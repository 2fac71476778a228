package load

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// readMarkdown reads the first GFM table of a Markdown document.
func readMarkdown(src []byte) (*dataset.RowTable, error) {
	doc := markdown.Parser().Parse(text.NewReader(src))

	var table *extast.Table
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*extast.Table); ok {
			table = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: markdown: %w", ErrParse, err)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: markdown: no table found", ErrParse)
	}

	var (
		names []string
		cells [][]string
	)
	for n := table.FirstChild(); n != nil; n = n.NextSibling() {
		switch n.(type) {
		case *extast.TableHeader:
			names = rowText(n, src)
		case *extast.TableRow:
			cells = append(cells, rowText(n, src))
		}
	}
	return tableFromStrings(names, cells), nil
}

func rowText(row ast.Node, src []byte) []string {
	var out []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*extast.TableCell); ok {
			out = append(out, strings.TrimSpace(inlineText(c, src)))
		}
	}
	return out
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(src))
			if v.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
