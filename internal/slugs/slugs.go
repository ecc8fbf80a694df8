// Package slugs provides canonical slugification helpers used across trellis.
//
// Important: There are *two* slugging strategies in trellis today:
//   - Heading slugs: used for anchor fragments carried on wiki links. These use
//     a conservative transformation that keeps non-ASCII letters, matching how
//     the destination renderer derives heading IDs.
//   - Path slugs: used for destination file paths, built on gosimple/slug with
//     emoji stripped beforehand.
//
// This package centralizes both strategies so their implementations are not
// duplicated.
package slugs

import (
	"strings"
	"unicode"

	"github.com/forPelevin/gomoji"
	goslug "github.com/gosimple/slug"
)

// Heading converts a heading fragment to a URL-friendly anchor slug.
func Heading(text string) string {
	var result strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '-' || r == '_' || r == ':':
			if !prevDash && result.Len() > 0 {
				result.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// StripEmoji removes every emoji grapheme from s.
//
// Path components go through this before Component: gosimple/slug would
// otherwise transliterate emoji into English words, so a rocket glyph in a
// folder name would surface as the token "rocket" in the destination path.
func StripEmoji(s string) string {
	return strings.TrimSpace(gomoji.RemoveEmojis(s))
}

// Component converts a single path component to a URL-safe slug.
func Component(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(StripEmoji(s))
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}

// NotePath derives the destination-relative path for a note from its relative
// key (slash-separated source path, extension already stripped).
//
// Each component is slugged independently so segment boundaries survive, and
// the markdown extension is reattached to the final segment; the destination
// renderer links pages by their extension-bearing content path.
func NotePath(relativeKey string) string {
	parts := strings.Split(relativeKey, "/")
	for i, part := range parts {
		parts[i] = Component(part)
	}
	return strings.Join(parts, "/") + ".md"
}
