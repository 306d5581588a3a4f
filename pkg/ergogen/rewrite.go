// Package ergogen converts parsed KiCad footprints into parametric ergogen
// footprint modules. The pipeline rewrites selected nodes with template
// placeholders, flattens the tree into one line per top-level child, groups
// the lines into layer buckets, and renders the buckets as the code blocks of
// the generated module.
package ergogen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/kicad2ergogen/pkg/kicad/sexp"
)

// literalSubst maps source tokens that are rewritten verbatim.
// The reference wildcard text becomes the reference designator placeholder.
var literalSubst = map[string]string{
	`"REF**"`: `"${p.ref}"`,
}

// Rewriter rewrites footprint nodes and collects the pad-derived parameter
// names discovered along the way. Use one Rewriter per input file so
// parameters never leak between footprints.
type Rewriter struct {
	params []string
	seen   map[string]bool
	log    *zap.Logger
}

// NewRewriter creates a rewriter with an empty parameter registry
func NewRewriter(log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{
		seen: make(map[string]bool),
		log:  log,
	}
}

// Params returns the discovered parameter names in first-seen order.
// Registration order follows node order in the source, so generated modules
// are byte-stable across runs.
func (r *Rewriter) Params() []string {
	out := make([]string, len(r.params))
	copy(out, r.params)
	return out
}

func (r *Rewriter) register(name string) {
	if r.seen[name] {
		return
	}
	r.seen[name] = true
	r.params = append(r.params, name)
}

// escapePlaceholders neutralizes literal template syntax in a source token so
// it cannot be mistaken for an injected placeholder downstream.
func escapePlaceholders(tok string) string {
	return strings.ReplaceAll(tok, "${", `\${`)
}

// RewriteNode rewrites a list node and all of its descendants to text.
// Nested lists are rewritten depth first, atoms are escaped and substituted,
// and the node is then dispatched on its head token. Nodes dropped by their
// handler rewrite to the empty string.
func (r *Rewriter) RewriteNode(list *sexp.List) string {
	tokens := make([]string, 0, list.Len())
	for _, elem := range list.Elements() {
		if sub, ok := elem.(*sexp.List); ok {
			tokens = append(tokens, r.RewriteNode(sub))
			continue
		}
		tok := escapePlaceholders(elem.String())
		if repl, ok := literalSubst[tok]; ok {
			tok = repl
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) == 0 {
		return "()"
	}

	switch tokens[0] {
	case "at":
		tokens = handleAt(tokens)
	case "pad":
		tokens = r.handlePad(tokens)
	case "property":
		tokens = r.handleProperty(tokens)
	case "tstamp", "uuid":
		// identity and timestamp metadata has no place in a template
		tokens = nil
	}

	if len(tokens) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s %s)", tokens[0], strings.Join(tokens[1:], " "))
}

// handleAt appends the rotation placeholder to a position node. An existing
// rotation value is kept symbolically inside the placeholder expression.
func handleAt(tokens []string) []string {
	if len(tokens) < 4 {
		return append(tokens, "${p.rot}")
	}
	tokens[3] = "${" + tokens[3] + " + p.rot}"
	return tokens
}

// handlePad derives a net parameter name from the pad identifier and appends
// a net reference placeholder bound to it. Identifiers starting with a digit
// get a 'P' prefix so the name is a valid parameter. Pads with an empty
// identifier carry no net and pass through untouched.
func (r *Rewriter) handlePad(tokens []string) []string {
	if len(tokens) < 2 {
		return tokens
	}
	id := tokens[1]
	if id == `""` {
		return tokens
	}

	name := strings.Trim(id, `"`)
	if name == "" {
		return tokens
	}
	if first, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(first) {
		name = "P" + name
	}
	r.log.Debug("Registered pad parameter", zap.String("pad", id), zap.String("param", name))

	r.register(name)
	return append(tokens, "${p."+name+"}")
}

// handleProperty rewrites the reference property: the value becomes the
// reference placeholder, layer fields are forced to the side-parametrized
// silkscreen layer, and exactly one visibility field ends up bound to the
// reference-visibility placeholder whether or not the source had a hide flag.
// Properties other than "Reference" pass through.
func (r *Rewriter) handleProperty(tokens []string) []string {
	if len(tokens) < 3 || tokens[1] != `"Reference"` {
		return tokens
	}

	tokens[2] = `"${p.ref}"`
	rest := tokens[3:]

	for i, tok := range rest {
		if strings.Contains(tok, "layer") {
			rest[i] = `(layer "${p.side}.SilkS")`
		}
	}

	hasHide := false
	for _, tok := range rest {
		if strings.Contains(tok, "hide") {
			hasHide = true
			break
		}
	}
	if !hasHide {
		expanded := make([]string, 0, len(rest)+1)
		for _, tok := range rest {
			expanded = append(expanded, tok)
			if strings.Contains(tok, "layer") {
				expanded = append(expanded, "hide")
			}
		}
		rest = expanded
	}

	for i, tok := range rest {
		if strings.Contains(tok, "hide") {
			rest[i] = "${p.ref_hide}"
		}
	}

	return append(tokens[:3], rest...)
}
