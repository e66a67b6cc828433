// Package tsdl parses Trace Stream Description Language metadata into a
// typed document model (spec.md §1). The pipeline is two-pass: grammar
// recognition (internal/parser) produces a syntax tree, pass 1
// (internal/resolve) substitutes every alias/struct/variant reference,
// and pass 2 (internal/materialize) builds the document.Doc returned to
// callers.
package tsdl

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/materialize"
	"github.com/efficios/tsdl-go/internal/parser"
	"github.com/efficios/tsdl-go/internal/resolve"
)

// Options configures a parse. Note that the zero value disables
// StrictOctal; omit Options entirely to get the defaults.
type Options struct {
	// StrictOctal rejects digits 8/9 in octal literals (spec.md §9's open
	// question on octal parsing). Defaults to true when Options is not
	// supplied at all (see Parse/GetAST), matching internal/token's
	// default.
	StrictOctal bool
}

func defaultOptions() Options {
	return Options{StrictOctal: true}
}

// Parse runs the full pipeline over source and returns the materialized
// document, or the first error encountered at any stage (spec.md §4.6,
// §7 fail-fast).
func Parse(source string, opts ...Options) (*document.Doc, error) {
	o := resolveOptions(opts)
	prog, err := parser.Parse(source, o.StrictOctal)
	if err != nil {
		return nil, err
	}
	prog, err = resolve.Resolve(prog)
	if err != nil {
		return nil, err
	}
	return materialize.Materialize(prog)
}

// GetAST runs only grammar recognition over source, returning the raw
// syntax tree with no scope resolution or semantic validation applied
// (spec.md §6, for debugging and tests).
func GetAST(source string, opts ...Options) (*ast.Program, error) {
	o := resolveOptions(opts)
	return parser.Parse(source, o.StrictOctal)
}

func resolveOptions(opts []Options) Options {
	if len(opts) == 0 {
		return defaultOptions()
	}
	return opts[0]
}
