// Package extract maps input documents to outlines. PDFs go through
// the layout analysis pipeline; markup formats carry their structure
// explicitly and bypass it.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/krishnasree5/outliner/internal/layout"
	"github.com/krishnasree5/outliner/internal/outline"
)

// Outliner produces an outline from raw document bytes.
type Outliner interface {
	Outline(r io.Reader, filename string) (outline.Outline, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the appropriate outliner for a filename.
func ForFile(filename string, cfg layout.Config) (Outliner, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFOutliner{Layout: cfg}, nil
	case ".md", ".markdown":
		return &MarkdownOutliner{}, nil
	case ".html", ".htm":
		return &HTMLOutliner{}, nil
	case ".docx":
		return &DOCXOutliner{}, nil
	case ".txt":
		return &TextOutliner{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// fileStem strips the directory and extension from a filename; it is
// the fallback title for formats that carry none of their own.
func fileStem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
