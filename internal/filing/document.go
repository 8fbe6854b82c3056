// Package filing classifies raw filing documents and exposes uniform access
// to their structured (XML tree) or free-text content.
package filing

import (
	"bytes"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Format identifies how a filing document is encoded.
type Format int

const (
	// Structured is an XML e-file document.
	Structured Format = iota
	// FreeText is a loosely formatted plain-text rendering of a filing.
	FreeText
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Structured:
		return "structured"
	case FreeText:
		return "free-text"
	default:
		return "unknown"
	}
}

// ErrUnrecognizedFormat marks a document that is neither parseable XML nor
// recognizable filing text. The filing is dropped; processing continues.
var ErrUnrecognizedFormat = eris.New("filing: unrecognized document format")

// freeTextMarkers must appear (case-insensitively) for a non-XML payload to
// be accepted as a free-text filing.
var freeTextMarkers = []string{"RETURN HEADER", "FORM 990", "EIN:"}

// Document is one classified filing. Immutable once built.
type Document struct {
	Format Format

	// Root is set for Structured documents.
	Root *Node

	// lines and upper are set for FreeText documents; upper is the
	// uppercase shadow used for case-insensitive matching.
	lines []string
	upper []string
}

// Classify detects the payload format and produces a parsed handle.
// XML is attempted first; anything else must pass the free-text marker test.
func Classify(data []byte) (*Document, error) {
	if root, err := ParseTree(bytes.NewReader(data)); err == nil {
		zap.L().Debug("classified document", zap.String("format", "structured"))
		return &Document{Format: Structured, Root: root}, nil
	}

	// Best-effort text decode: invalid byte sequences are stripped, never fatal.
	text := strings.ToValidUTF8(string(data), "")
	upperAll := strings.ToUpper(text)

	recognized := false
	for _, marker := range freeTextMarkers {
		if strings.Contains(upperAll, marker) {
			recognized = true
			break
		}
	}
	if !recognized {
		return nil, ErrUnrecognizedFormat
	}

	lines := strings.Split(text, "\n")
	upper := make([]string, len(lines))
	for i, l := range lines {
		upper[i] = strings.ToUpper(l)
	}

	zap.L().Debug("classified document", zap.String("format", "free-text"), zap.Int("lines", len(lines)))
	return &Document{Format: FreeText, lines: lines, upper: upper}, nil
}

// Lines returns the document's raw text lines (FreeText only).
func (d *Document) Lines() []string { return d.lines }

// UpperLines returns the uppercase shadow of Lines (FreeText only).
func (d *Document) UpperLines() []string { return d.upper }
