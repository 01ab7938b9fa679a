package coder

import "strings"

// unrollComment normalizes comment text before it enters the chunk tree: a
// single-line (//) or block (/* */) wrapper is stripped, surrounding
// whitespace trimmed, and for multi-line text the minimum leading whitespace
// shared by continuation lines is removed from each of them. The first line
// is never re-indented so a summary line keeps its shape.
func unrollComment(src string) string {
	src = strings.TrimSpace(src)

	if strings.HasPrefix(src, "//") {
		src = src[2:]
	} else if strings.HasPrefix(src, "/*") && strings.HasSuffix(src, "*/") && len(src) > 3 {
		src = src[2 : len(src)-2]
	}

	src = strings.TrimSpace(src)

	if !strings.Contains(src, "\n") {
		return src
	}

	lines := strings.Split(src, "\n")

	indent := -1
	for _, line := range lines[1:] {
		n := leadingWhitespace(line)
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines[1:] {
		lines[i+1] = line[indent:]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespace(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}
