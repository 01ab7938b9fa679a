package parser

import (
	"bufio"
	"bytes"
	"io"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katyo/c4dart/logger"
)

// The clang driver prints its include search list on stderr between these
// two markers.
const (
	searchStartMarker = "#include <...> search starts here:"
	searchEndMarker   = "End of search list."
)

// SystemIncludePaths asks the clang driver for its system include search
// directories. One blocking subprocess invocation per run, with no timeout.
func SystemIncludePaths() ([]string, error) {
	cmd := exec.Command("clang", "-E", "-xc", "-v", "-")

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(err, "clang driver invocation failed")
	}

	paths := parseSearchList(&stderr)
	logger.Debugf("system include paths: %v", paths)

	return paths, nil
}

// parseSearchList extracts the delimited search list from driver output.
func parseSearchList(r io.Reader) []string {
	var paths []string

	inList := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == searchStartMarker:
			inList = true
		case line == searchEndMarker:
			return paths
		case inList:
			paths = append(paths, strings.TrimSpace(line))
		}
	}

	return paths
}
