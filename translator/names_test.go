package translator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchName(t *testing.T) {
	tr := New(Options{Match: regexp.MustCompile(`^c_\w+$`), Replace: "$0"})

	assert.True(t, tr.matchName("c_add"))
	assert.True(t, tr.matchName("c_remove_all"))
	assert.False(t, tr.matchName("internal_helper"))
	assert.False(t, tr.matchName(""))
}

func TestMakeName(t *testing.T) {
	tr := New(Options{Match: regexp.MustCompile(`^c_(\w+)$`), Replace: "Lib$1"})

	assert.Equal(t, "Libadd", tr.makeName("c_add"))
	assert.Equal(t, "Libopen_file", tr.makeName("c_open_file"))
}

func TestMakeNameIdentity(t *testing.T) {
	tr := New(Options{Match: regexp.MustCompile(`.*`), Replace: "$0"})

	assert.Equal(t, "Color", tr.makeName("Color"))
	assert.Equal(t, "c_add", tr.makeName("c_add"))
}

// A rewritten name must not match the pattern again, otherwise repeated
// rewriting would diverge.
func TestMakeNameRewriteStable(t *testing.T) {
	tr := New(Options{Match: regexp.MustCompile(`^c_(\w+)$`), Replace: "Lib$1"})

	once := tr.makeName("c_add")
	assert.Equal(t, once, tr.makeName(once))
}

func TestExportOnce(t *testing.T) {
	tr := New(Options{Match: regexp.MustCompile(`.*`), Replace: "$0"})

	assert.True(t, tr.exportOnce("Point"))
	assert.False(t, tr.exportOnce("Point"))
	assert.True(t, tr.exportOnce("Color"))
	assert.False(t, tr.exportOnce("Point"))
}

func TestWithoutPrefix(t *testing.T) {
	for _, tt := range []struct {
		src, prefix, want string
	}{
		{"COLOR_RED", "Color", "RED"},
		{"COLOR__RED", "Color", "RED"},
		{"ColorGreen", "Color", "Green"},
		{"BLUE", "Color", "BLUE"},
		{"Color", "Color", ""},
		{"RED", "SomeLongPrefix", "RED"},
	} {
		assert.Equal(t, tt.want, withoutPrefix(tt.src, tt.prefix), "withoutPrefix(%q, %q)", tt.src, tt.prefix)
	}
}
