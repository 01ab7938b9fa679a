package translator

import "regexp"

// Options configures one translation run.
type Options struct {
	// Match selects which top-level declaration names are translated.
	// Unnamed declarations and names that fail the pattern are skipped
	// entirely.
	Match *regexp.Regexp

	// Replace is the capture-group substitution template applied to a
	// matched name to produce the Dart-visible identifier.
	Replace string

	// ClassName is the name of the generated library wrapper class.
	ClassName string
}
