package extract

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/krishnasree5/outliner/internal/outline"
)

// HTMLOutliner reads heading structure from h1-h4 tags; the title comes
// from the <title> element when present.
type HTMLOutliner struct{}

func (p *HTMLOutliner) Outline(r io.Reader, filename string) (outline.Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return outline.Empty(), fmt.Errorf("parse html: %w", err)
	}

	out := outline.Empty()
	if title := findTitle(doc); title != "" {
		out.Title = title
	} else {
		out.Title = fileStem(filename)
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			}
			if depth := headingDepth(n.Data); depth > 0 {
				level, ok := outline.ForDepth(depth)
				if ok {
					if text := textContent(n); text != "" {
						out.Entries = append(out.Entries, outline.Entry{
							Level: level,
							Text:  text,
							Page:  1,
						})
					}
				}
				return // Heading text already extracted, don't recurse.
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return out, nil
}

func headingDepth(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
