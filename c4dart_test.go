package c4dart

import (
	"io"
	"regexp"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/katyo/c4dart/parser"
	"github.com/katyo/c4dart/translator"
)

func TestTranslateMissingInput(t *testing.T) {
	opts := translator.Options{
		Match:     regexp.MustCompile(`.*`),
		Replace:   "$0",
		ClassName: "Example",
	}

	err := Translate(opts, parser.Config{}, "/nonexistent/example.h", io.Discard)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.False(t, errors.Is(err, ErrGenerate))
}
