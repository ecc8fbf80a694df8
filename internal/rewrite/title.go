package rewrite

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// stripLeadingTitle removes a top-level heading that opens the document.
//
// Goldmark locates the heading so that a "#" inside a code fence or deeper in
// the body is never mistaken for a title; only a level-1 heading that is the
// document's first block is removed.
func stripLeadingTitle(body string) string {
	src := []byte(body)
	doc := md.Parser().Parse(text.NewReader(src))

	heading, ok := doc.FirstChild().(*ast.Heading)
	if !ok || heading.Level != 1 || heading.Lines().Len() == 0 {
		return body
	}

	// Only ATX titles ("# Title") count; a setext heading spans a second
	// line the segment range below would not cover.
	seg := heading.Lines().At(0)
	lineStart := strings.LastIndexByte(body[:seg.Start], '\n') + 1
	if lineStart >= len(body) || body[lineStart] != '#' {
		return body
	}

	end := heading.Lines().At(heading.Lines().Len() - 1).Stop
	if end < len(body) && body[end] == '\n' {
		end++
	}
	return body[end:]
}
