// Package markdown provides the Markdown queries the validation rules need:
// link extraction, heading positions, section ranges, and line counting.
// Parsing is done with goldmark; positions are reported as 1-based line
// numbers in the original source.
package markdown

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Link is an inline link or image extracted from a document.
type Link struct {
	// Target is the destination as written, e.g. "references/deep-dive.md".
	Target string

	// Line is the 1-based line number the link appears on, or 0 when the
	// position could not be determined.
	Line int
}

// Heading is a document heading with its position.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// Document wraps a parsed Markdown document for position-aware queries.
type Document struct {
	source []byte
	root   ast.Node
	lines  *lineIndex
}

// Parse parses source as Markdown. It never fails: Markdown has no invalid
// inputs, only surprising parses.
func Parse(source []byte) *Document {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))
	return &Document{
		source: source,
		root:   root,
		lines:  newLineIndex(source),
	}
}

// Links returns every inline link and image in the document, in source order.
func (d *Document) Links() []Link {
	var links []Link
	_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Link:
			links = append(links, Link{Target: string(t.Destination), Line: d.nodeLine(n)})
		case *ast.Image:
			links = append(links, Link{Target: string(t.Destination), Line: d.nodeLine(n)})
		}
		return ast.WalkContinue, nil
	})
	return links
}

// Headings returns every heading in the document, in source order.
func (d *Document) Headings() []Heading {
	var headings []Heading
	_ = ast.Walk(d.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		line := 0
		if h.Lines().Len() > 0 {
			line = d.lines.lineFor(h.Lines().At(0).Start)
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  nodeText(h, d.source),
			Line:  line,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Section returns the 1-based line range of the content under the first
// heading whose text equals title (case-insensitive, surrounding whitespace
// ignored). The range starts on the line after the heading and ends before
// the next heading of the same or higher level, or at the last line of the
// document. ok is false when no such heading exists.
func (d *Document) Section(title string) (start, end int, ok bool) {
	headings := d.Headings()
	for i, h := range headings {
		if !strings.EqualFold(strings.TrimSpace(h.Text), title) {
			continue
		}
		start = h.Line + 1
		end = d.lines.count()
		for _, next := range headings[i+1:] {
			if next.Level <= h.Level {
				end = next.Line - 1
				break
			}
		}
		return start, end, true
	}
	return 0, 0, false
}

// SliceLines returns the source text of lines start through end inclusive,
// without line terminators. Out-of-range bounds are clamped.
func (d *Document) SliceLines(start, end int) []string {
	total := d.lines.count()
	if start < 1 {
		start = 1
	}
	if end > total {
		end = total
	}
	if start > end {
		return nil
	}
	out := make([]string, 0, end-start+1)
	for line := start; line <= end; line++ {
		out = append(out, d.lines.text(d.source, line))
	}
	return out
}

// nodeLine resolves the line of an inline node via its first text segment,
// falling back to the enclosing block when the node has no text of its own.
func (d *Document) nodeLine(n ast.Node) int {
	offset := -1
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			offset = t.Segment.Start
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if offset < 0 {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
				offset = p.Lines().At(0).Start
				break
			}
		}
	}
	if offset < 0 {
		return 0
	}
	return d.lines.lineFor(offset)
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// CountNonBlank counts the lines of src containing at least one
// non-whitespace character.
func CountNonBlank(src []byte) int {
	count := 0
	for len(src) > 0 {
		line := src
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			line = src[:i]
			src = src[i+1:]
		} else {
			src = nil
		}
		if len(bytes.TrimSpace(line)) > 0 {
			count++
		}
	}
	return count
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int // byte offset where each line begins
	size   int
}

func newLineIndex(src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts, size: len(src)}
}

// lineFor returns the 1-based line containing the byte at offset.
func (ix *lineIndex) lineFor(offset int) int {
	return sort.SearchInts(ix.starts, offset+1)
}

// count returns the number of lines, counting a trailing newline as the end
// of the last line rather than the start of a new one.
func (ix *lineIndex) count() int {
	n := len(ix.starts)
	if n > 0 && ix.starts[n-1] >= ix.size {
		n--
	}
	return n
}

// text returns the content of the given 1-based line without its terminator.
func (ix *lineIndex) text(src []byte, line int) string {
	if line < 1 || line > len(ix.starts) {
		return ""
	}
	start := ix.starts[line-1]
	end := ix.size
	if line < len(ix.starts) {
		end = ix.starts[line] - 1
	}
	if end > start && end-1 < ix.size && src[end-1] == '\r' {
		end--
	}
	if start > end {
		return ""
	}
	return string(src[start:end])
}
