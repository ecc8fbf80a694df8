package rewrite

import "regexp"

// Compiled pattern registry for every embedded reference dialect the rewriter
// recognizes. Initialized once at startup, never mutated.
//
// Caveat inherited from the export format: these run over raw note text, so a
// code fence containing bracket-heavy sample code can in principle match the
// wiki-link pattern. The inner characters are constrained to be non-brackets,
// which rules out most snippets but not all of them; an unlucky match then
// fails resolution with the offending file and text attached.
var (
	// [[Cryptography/TLS]] — inner text may not contain brackets.
	reWikiLink = regexp.MustCompile(`\[\[(?P<target>[^\[\]]+?)\]\]`)

	// #^2206D341-3D6E-4F31-B7CF-DD7E3D5D7778 — a block anchor: a marker
	// character followed by a 36-character v4-shaped identifier.
	reBlockAnchor = regexp.MustCompile(`#\^[0-9A-Za-z]{8}-[0-9A-Za-z]{4}-4[0-9A-Za-z]{3}-[89ABab][0-9A-Za-z]{3}-[0-9A-Za-z]{12}`)

	// Splits "Topic/Sub#Some Heading" into target and heading fragment.
	// Greedy target keeps everything up to the last separator.
	reHeadingAnchor = regexp.MustCompile(`^(?P<target>.+)#(?P<heading>.+)$`)

	// [Tues, Jan 4](day://2023.01.04)
	reDayLink = regexp.MustCompile(`\[(?P<desc>[^\]]*)\]\(day://(?P<date>\d{4}\.\d{2}\.\d{2})\)`)

	// ![Image.jpeg](Non%20Qualified%20Stock%20Options(NSO).assets/Image.jpeg)
	// The directory prefix may contain parentheses, so it matches anything
	// up to the ".assets/" segment; non-greedy keeps two image links on one
	// line from being swallowed as a single match.
	reAssetImage = regexp.MustCompile(`!\[(?P<alt>[^\]]*)\]\((?P<dir>.*?\.assets/)(?P<file>[^)]*)\)`)

	// [Open in app](craftdocs://open?blockID=…&spaceID=…) — private
	// application-internal block addressing; never representable.
	reCraftBlockLink = regexp.MustCompile(`\[[^\]]*\]\((craftdocs://open[^)]*)\)`)

	// Craft tags fences it cannot classify with the non-standard "other".
	reOtherFence = regexp.MustCompile("```other")
)

// replaceAllFunc substitutes every match of re in src with the result of
// repl, propagating the first error instead of substituting. repl receives
// the named capture groups and the full matched text.
func replaceAllFunc(re *regexp.Regexp, src string, repl func(groups map[string]string, match string) (string, error)) (string, error) {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if matches == nil {
		return src, nil
	}

	names := re.SubexpNames()
	var out []byte
	last := 0
	for _, m := range matches {
		groups := make(map[string]string, len(names))
		for i, name := range names {
			if name == "" || m[2*i] < 0 {
				continue
			}
			groups[name] = src[m[2*i]:m[2*i+1]]
		}

		rep, err := repl(groups, src[m[0]:m[1]])
		if err != nil {
			return "", err
		}
		out = append(out, src[last:m[0]]...)
		out = append(out, rep...)
		last = m[1]
	}
	out = append(out, src[last:]...)
	return string(out), nil
}
