package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/krishnasree5/outliner/internal/outline"
)

// DOCXOutliner reads heading structure from Word paragraph styles
// (Title, Heading1-Heading4).
type DOCXOutliner struct{}

func (p *DOCXOutliner) Outline(r io.Reader, filename string) (outline.Outline, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-docx-*.docx")
	if err != nil {
		return outline.Empty(), fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return outline.Empty(), fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return outline.Empty(), fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return outline.Empty(), fmt.Errorf("parse docx: %w", err)
	}

	out := outline.Empty()

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}

		style := paragraphStyle(para)
		if out.Title == "" && strings.EqualFold(style, "Title") {
			out.Title = text
			continue
		}

		depth := headingStyleDepth(style)
		if depth == 0 {
			continue
		}
		level, ok := outline.ForDepth(depth)
		if !ok {
			continue
		}
		out.Entries = append(out.Entries, outline.Entry{
			Level: level,
			Text:  text,
			Page:  1,
		})
	}

	if out.Title == "" {
		out.Title = fileStem(filename)
	}
	return out, nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func headingStyleDepth(style string) int {
	for depth := 1; depth <= 6; depth++ {
		if strings.EqualFold(style, fmt.Sprintf("Heading%d", depth)) ||
			strings.EqualFold(style, fmt.Sprintf("heading %d", depth)) {
			return depth
		}
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
