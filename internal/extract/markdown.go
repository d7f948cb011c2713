package extract

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/krishnasree5/outliner/internal/outline"
)

// MarkdownOutliner reads heading structure from the goldmark AST.
// Markdown carries its hierarchy explicitly, so no layout analysis is
// needed: ATX/setext levels 1-4 map straight to H1-H4.
type MarkdownOutliner struct{}

func (p *MarkdownOutliner) Outline(r io.Reader, filename string) (outline.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return outline.Empty(), err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	out := outline.Empty()

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(headingText(heading, src)))
		if title == "" {
			continue
		}

		// The first level-1 heading is the document title, not part of
		// the outline.
		if heading.Level == 1 && out.Title == "" {
			out.Title = title
			continue
		}

		level, ok := outline.ForDepth(heading.Level)
		if !ok {
			continue
		}
		out.Entries = append(out.Entries, outline.Entry{
			Level: level,
			Text:  title,
			Page:  1,
		})
	}

	if out.Title == "" {
		out.Title = fileStem(filename)
	}
	return out, nil
}

// headingText collects the inline text of a heading node.
func headingText(n ast.Node, src []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf = append(buf, t.Value(src)...)
		} else {
			buf = append(buf, headingText(c, src)...)
		}
	}
	return buf
}
