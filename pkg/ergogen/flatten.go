package ergogen

import (
	"strings"

	"github.com/OpenTraceLab/kicad2ergogen/pkg/kicad/sexp"
)

// Flatten walks the top-level children of the footprint body and produces one
// text line per flattened unit. Consecutive scalar tokens merge into a single
// space-joined line; each list child is rewritten through RewriteNode and
// contributes its own line. A node dropped by its handler still occupies a
// line position as the empty string, so callers must run dropEmpty before
// classification.
func (r *Rewriter) Flatten(root *sexp.List) []string {
	var lines []string
	var run []string

	flush := func() {
		if len(run) > 0 {
			lines = append(lines, strings.Join(run, " "))
			run = run[:0]
		}
	}

	for _, elem := range root.Elements() {
		if list, ok := elem.(*sexp.List); ok {
			flush()
			lines = append(lines, r.RewriteNode(list))
			continue
		}
		run = append(run, elem.String())
	}
	flush()

	return lines
}

// dropEmpty removes the empty lines left behind by dropped nodes. Without
// this filter they would land in the opening bucket and render as blank
// indented lines.
func dropEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
