// Package c4dart generates Dart FFI bindings from C headers in a single
// parse-translate-emit pass.
package c4dart

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katyo/c4dart/parser"
	"github.com/katyo/c4dart/translator"
	"github.com/katyo/c4dart/version"
)

// Name is the program name stamped into the generated banner.
const Name = "c4dart"

// Error categories, attached with errors.Mark so callers can classify
// failures with errors.Is without losing the underlying cause.
var (
	// ErrGenerate marks failures of parsing or translation.
	ErrGenerate = errors.New("generation error")

	// ErrIO marks failures reading the input or writing the output.
	ErrIO = errors.New("i/o error")
)

// Translate parses the header at input and writes a complete Dart binding
// file to out: a banner, the translated declarations and the library
// wrapper class named by opts.ClassName.
func Translate(opts translator.Options, cfg parser.Config, input string, out io.Writer) error {
	root, err := parser.ParseHeader(input, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return errors.Mark(err, ErrIO)
		}
		return errors.Mark(err, ErrGenerate)
	}

	tr := translator.New(opts)
	if err := tr.Translate(root); err != nil {
		return errors.Mark(err, ErrGenerate)
	}
	tr.MakeClass(opts.ClassName)

	if _, err := fmt.Fprintf(out,
		"/* This file was generated using %s v%s tool and should not be modified manually. */\n",
		Name, version.Version); err != nil {
		return errors.Mark(err, ErrIO)
	}
	if _, err := tr.Coder().WriteTo(out); err != nil {
		return errors.Mark(err, ErrIO)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return errors.Mark(err, ErrIO)
	}

	return nil
}
