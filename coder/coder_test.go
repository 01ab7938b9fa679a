package coder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	c := New()
	c.Line("int x = 1;")
	c.Line("")

	assert.Equal(t, "int x = 1;\n\n", c.String())
}

func TestEmptyBlock(t *testing.T) {
	c := New()
	c.BlockFunc("class Empty", func(*Coder) {})

	assert.Equal(t, "class Empty {}\n", c.String())
}

func TestBlockIndentation(t *testing.T) {
	c := New()
	c.BlockFunc("class Outer", func(c *Coder) {
		c.Line("int a;")
		c.BlockFunc("class Inner", func(c *Coder) {
			c.Line("int b;")
		})
	})

	expected := strings.Join([]string{
		"class Outer {",
		"    int a;",
		"    class Inner {",
		"        int b;",
		"    }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, c.String())
}

func TestBlockConsumesBody(t *testing.T) {
	body := New()
	body.Line("int a;")

	c := New()
	c.Block("class X", body)

	assert.Equal(t, "class X {\n    int a;\n}\n", c.String())
	assert.Equal(t, "", body.String())
}

func TestCommentSingleLine(t *testing.T) {
	c := New()
	c.Comment("// hello")

	assert.Equal(t, "/*hello\n */\n", c.String())
}

func TestCommentBlockWrapper(t *testing.T) {
	c := New()
	c.Comment("/* wrapped */")

	assert.Equal(t, "/*wrapped\n */\n", c.String())
}

func TestCommentReflow(t *testing.T) {
	c := New()
	c.Comment("/* Summary line\n      first continuation\n    second continuation */")

	expected := strings.Join([]string{
		"/*Summary line",
		"   first continuation",
		" second continuation",
		" */",
		"",
	}, "\n")
	assert.Equal(t, expected, c.String())
}

func TestCommentFirstLineUntouched(t *testing.T) {
	// The first line keeps whatever shape it has after the wrapper strip;
	// only continuation lines lose their shared indentation.
	c := New()
	c.Comment("Top\n        a\n        b")

	assert.Equal(t, "/*Top\n a\n b\n */\n", c.String())
}

func TestCommentInsideBlock(t *testing.T) {
	c := New()
	c.BlockFunc("class X", func(c *Coder) {
		c.Comment("field")
		c.Line("int a;")
	})

	expected := strings.Join([]string{
		"class X {",
		"    /*field",
		"     */",
		"    int a;",
		"}",
		"",
	}, "\n")
	assert.Equal(t, expected, c.String())
}

func TestWriteToCountsBytes(t *testing.T) {
	c := New()
	c.Line("abc")

	var sb strings.Builder
	n, err := c.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len("abc\n")), n)
}

func TestRenderIsRepeatable(t *testing.T) {
	c := New()
	c.Comment("stable")
	c.BlockFunc("class X", func(c *Coder) {
		c.Line("int a;")
	})

	assert.Equal(t, c.String(), c.String())
}
