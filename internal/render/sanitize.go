package render

import (
	"html"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

var htmlTagName = regexp.MustCompile(`^<(/?)([A-Za-z][A-Za-z0-9-]*)`)

// StrictHTMLPolicy returns a singleton bluemonday policy that strips every
// HTML element and attribute; script and style bodies are dropped entirely.
func StrictHTMLPolicy() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Sanitize removes control characters other than newline and tab, then strips
// the raw HTML nodes of the markdown source. Code spans, code blocks and text
// that only looks like markup (generics, comparisons) are kept verbatim.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	return stripRawHTML(stripControl(s))
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// span is a byte range [start, stop) of the markdown source.
type span struct {
	start, stop int
}

func stripRawHTML(s string) string {
	source := []byte(s)
	spans := rawHTMLSpans(source)
	if len(spans) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		if sp.start < last {
			continue
		}
		b.Write(source[last:sp.start])
		// entities escaped by the policy are decoded: the result is terminal text
		b.WriteString(html.UnescapeString(StrictHTMLPolicy().Sanitize(string(source[sp.start:sp.stop]))))
		last = sp.stop
	}
	b.Write(source[last:])

	return b.String()
}

// rawHTMLSpans returns the source ranges of HTML blocks and inline raw HTML,
// ordered by position. An inline opening tag is joined with its closing
// sibling so the element body is sanitised together with its tags.
func rawHTMLSpans(source []byte) []span {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var spans []span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.HTMLBlock:
			if sp, ok := htmlBlockSpan(node); ok {
				spans = append(spans, sp)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		}

		spans = append(spans, inlineHTMLSpans(n, source)...)
		return ast.WalkContinue, nil
	})

	slices.SortFunc(spans, func(a, b span) int { return a.start - b.start })
	return spans
}

func htmlBlockSpan(block *ast.HTMLBlock) (span, bool) {
	lines := block.Lines()
	sp := span{start: -1}

	if lines.Len() > 0 {
		sp.start = lines.At(0).Start
		sp.stop = lines.At(lines.Len() - 1).Stop
	}
	if block.HasClosure() {
		if sp.start < 0 {
			sp.start = block.ClosureLine.Start
		}
		sp.stop = max(sp.stop, block.ClosureLine.Stop)
	}

	return sp, sp.start >= 0 && sp.stop > sp.start
}

func inlineHTMLSpans(parent ast.Node, source []byte) []span {
	var spans []span
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		raw, ok := c.(*ast.RawHTML)
		if !ok {
			continue
		}
		sp, ok := rawSpan(raw)
		if !ok {
			continue
		}
		if closing := closingSibling(raw, source); closing != nil {
			if end, ok := rawSpan(closing); ok {
				sp.stop = end.stop
				c = closing
			}
		}
		spans = append(spans, sp)
	}
	return spans
}

func rawSpan(raw *ast.RawHTML) (span, bool) {
	if raw.Segments == nil || raw.Segments.Len() == 0 {
		return span{}, false
	}
	return span{
		start: raw.Segments.At(0).Start,
		stop:  raw.Segments.At(raw.Segments.Len() - 1).Stop,
	}, true
}

// closingSibling finds the closing tag matching open among its following
// siblings. A code span in between stops the search.
func closingSibling(open *ast.RawHTML, source []byte) *ast.RawHTML {
	closing, name := tagOf(open, source)
	if closing || name == "" {
		return nil
	}

	for n := open.NextSibling(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.CodeSpan:
			return nil
		case *ast.RawHTML:
			if isClosing, other := tagOf(node, source); isClosing && other == name {
				return node
			}
		}
	}
	return nil
}

func tagOf(raw *ast.RawHTML, source []byte) (closing bool, name string) {
	sp, ok := rawSpan(raw)
	if !ok {
		return false, ""
	}
	m := htmlTagName.FindSubmatch(source[sp.start:sp.stop])
	if m == nil {
		return false, ""
	}
	return len(m[1]) > 0, strings.ToLower(string(m[2]))
}
