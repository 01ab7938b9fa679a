// Package coder implements a tree-shaped source text builder. Output is
// accumulated as an append-only sequence of chunks (plain lines, nested
// blocks, comments) and rendered in one depth-first pass with four spaces
// of indentation per nesting level.
package coder

import (
	"fmt"
	"io"
	"strings"
)

const indentWidth = 4

type chunkKind int

const (
	chunkLine chunkKind = iota
	chunkBlock
	chunkComment
)

type chunk struct {
	kind chunkKind
	text string
	body []chunk
}

// Coder owns an ordered sequence of chunks. The zero value is ready to use.
type Coder struct {
	chunks []chunk
}

func New() *Coder {
	return &Coder{}
}

// Line appends a single line of code.
func (c *Coder) Line(text string) {
	c.chunks = append(c.chunks, chunk{kind: chunkLine, text: text})
}

// Block appends a block headed by header. The body sub-tree is merged in by
// value and must not be used afterwards.
func (c *Coder) Block(header string, body *Coder) {
	c.chunks = append(c.chunks, chunk{kind: chunkBlock, text: header, body: body.chunks})
	body.chunks = nil
}

// BlockFunc builds a block body with fn against a fresh Coder and appends it.
func (c *Coder) BlockFunc(header string, fn func(*Coder)) {
	body := New()
	fn(body)
	c.Block(header, body)
}

// Comment appends a comment. Existing comment markers are stripped and
// multi-line text is reflowed; see unrollComment.
func (c *Coder) Comment(text string) {
	c.chunks = append(c.chunks, chunk{kind: chunkComment, text: unrollComment(text)})
}

// WriteTo renders the tree to w. Implements io.WriterTo. Nesting depth is a
// render-time parameter, not chunk state.
func (c *Coder) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := renderChunks(cw, c.chunks, 0)
	return cw.n, err
}

func (c *Coder) String() string {
	var sb strings.Builder
	c.WriteTo(&sb)
	return sb.String()
}

func renderChunks(w io.Writer, chunks []chunk, level int) error {
	for i := range chunks {
		if err := chunks[i].render(w, level); err != nil {
			return err
		}
	}
	return nil
}

func (ch *chunk) render(w io.Writer, level int) error {
	indent := strings.Repeat(" ", level*indentWidth)

	switch ch.kind {
	case chunkLine:
		_, err := fmt.Fprintf(w, "%s%s\n", indent, ch.text)
		return err

	case chunkBlock:
		if len(ch.body) == 0 {
			_, err := fmt.Fprintf(w, "%s%s {}\n", indent, ch.text)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s {\n", indent, ch.text); err != nil {
			return err
		}
		if err := renderChunks(w, ch.body, level+1); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s}\n", indent)
		return err

	default:
		lines := strings.Split(ch.text, "\n")
		if _, err := fmt.Fprintf(w, "%s/*%s\n", indent, lines[0]); err != nil {
			return err
		}
		for _, line := range lines[1:] {
			if _, err := fmt.Fprintf(w, "%s %s\n", indent, line); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s */\n", indent)
		return err
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
