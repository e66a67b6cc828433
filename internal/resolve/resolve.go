// Package resolve implements pass 1 of the two-pass semantic analyzer
// (spec.md §2, §4.3): a lexically-scoped resolver that walks the parsed
// syntax tree, maintaining a stack of symbol frames (alias/struct/variant
// namespaces), and substitutes every AliasRef/StructRef/VariantRef node
// with the structural content it names.
//
// Grounded on kdl-go's scope-frame stack idiom (internal/parser.ParseContext
// pushing and popping a slice of scope records) generalized from one
// namespace to three, and from a flat document scope to arbitrarily nested
// struct/variant bodies.
package resolve

import (
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// frame is one lexically-scoped symbol table (spec.md §4.3: "Each frame
// has three keyed namespaces: alias, struct, variant").
type frame struct {
	aliases  map[string]ast.Type
	structs  map[string]*ast.StructFull
	variants map[string]*ast.VariantFull
}

func newFrame() *frame {
	return &frame{
		aliases:  make(map[string]ast.Type),
		structs:  make(map[string]*ast.StructFull),
		variants: make(map[string]*ast.VariantFull),
	}
}

// Resolver walks an *ast.Program, substituting references in place.
type Resolver struct {
	stack []*frame
}

// Resolve runs pass 1 over prog, returning the same tree with every
// AliasRef/StructRef/VariantRef substituted for its resolved content.
// Resolve mutates prog's nodes in place and also returns prog, so callers
// may use either form.
func Resolve(prog *ast.Program) (*ast.Program, error) {
	r := &Resolver{}
	r.push()
	defer r.pop()

	for _, item := range prog.Items {
		if err := r.resolveTopLevelItem(item); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (r *Resolver) push() {
	r.stack = append(r.stack, newFrame())
}

func (r *Resolver) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Resolver) top() *frame {
	return r.stack[len(r.stack)-1]
}

func (r *Resolver) bindAlias(name string, t ast.Type) {
	r.top().aliases[name] = t
}

func (r *Resolver) bindStruct(name string, s *ast.StructFull) {
	r.top().structs[name] = s
}

func (r *Resolver) bindVariant(name string, v *ast.VariantFull) {
	r.top().variants[name] = v
}

func (r *Resolver) lookupAlias(name string) (ast.Type, bool) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if t, ok := r.stack[i].aliases[name]; ok {
			return t, true
		}
	}
	return nil, false
}

func (r *Resolver) lookupStruct(name string) (*ast.StructFull, bool) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if s, ok := r.stack[i].structs[name]; ok {
			return s, true
		}
	}
	return nil, false
}

func (r *Resolver) lookupVariant(name string) (*ast.VariantFull, bool) {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if v, ok := r.stack[i].variants[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (r *Resolver) resolveTopLevelItem(item ast.TopLevelItem) error {
	switch v := item.(type) {
	case *ast.Scope:
		r.push()
		defer r.pop()
		return r.resolveEntries(v.Entries)
	case *ast.TypeAliasDecl:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		r.bindAlias(v.Name, resolved)
		return nil
	case *ast.BareTypeDecl:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		return nil
	default:
		return errs.New(errs.SyntaxError, "unhandled top-level item %T", item)
	}
}

func (r *Resolver) resolveEntries(entries []ast.Entry) error {
	for _, entry := range entries {
		if err := r.resolveEntry(entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveEntry(entry ast.Entry) error {
	switch v := entry.(type) {
	case *ast.ValueAssign:
		return nil
	case *ast.TypeAssign:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		return nil
	case *ast.TypeAliasDecl:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		r.bindAlias(v.Name, resolved)
		return nil
	case *ast.BareTypeDecl:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		return nil
	case *ast.Field:
		resolved, err := r.resolveType(v.Type)
		if err != nil {
			return err
		}
		v.Type = resolved
		return nil
	default:
		return errs.New(errs.SyntaxError, "unhandled entry %T", entry)
	}
}

// resolveType substitutes reference nodes (AliasRef, StructRef,
// VariantRef) for the structural content they name, recursing into
// struct/variant bodies and pushing/popping a frame for each (spec.md
// §4.3). Named structs are returned by shared identity; named variants
// are deep-cloned on every reference (spec.md invariant 7).
func (r *Resolver) resolveType(t ast.Type) (ast.Type, error) {
	switch v := t.(type) {
	case *ast.IntegerType, *ast.FloatingPointType, *ast.StringType:
		return v, nil

	case *ast.EnumType:
		resolved, ok := r.lookupAlias(v.IntTypeName)
		if !ok {
			return nil, errs.NewAt(errs.UnresolvedAlias, v.Pos.Line, v.Pos.Column, "undeclared type alias %q for enum underlying type", v.IntTypeName)
		}
		if _, ok := resolved.(*ast.IntegerType); !ok {
			return nil, errs.NewAt(errs.SyntaxError, v.Pos.Line, v.Pos.Column, "enum underlying type %q is not an integer", v.IntTypeName)
		}
		v.ResolvedInt = resolved
		return v, nil

	case *ast.StructFull:
		if v.Name != nil {
			r.bindStruct(*v.Name, v)
		}
		r.push()
		err := r.resolveEntries(v.Entries)
		r.pop()
		if err != nil {
			return nil, err
		}
		return v, nil

	case *ast.StructRef:
		s, ok := r.lookupStruct(v.Name)
		if !ok {
			return nil, errs.NewAt(errs.UnresolvedStruct, v.Pos.Line, v.Pos.Column, "undeclared struct %q", v.Name)
		}
		return s, nil

	case *ast.VariantFull:
		if v.Name != nil {
			r.bindVariant(*v.Name, v)
		}
		r.push()
		err := r.resolveEntries(v.Entries)
		r.pop()
		if err != nil {
			return nil, err
		}
		return v, nil

	case *ast.VariantRef:
		tmpl, ok := r.lookupVariant(v.Name)
		if !ok {
			return nil, errs.NewAt(errs.UnresolvedVariant, v.Pos.Line, v.Pos.Column, "undeclared variant %q", v.Name)
		}
		clone := cloneVariantFull(tmpl)
		clone.Name = nil
		clone.Tag = v.Tag
		return clone, nil

	case *ast.AliasRef:
		resolved, ok := r.lookupAlias(v.Name)
		if !ok {
			return nil, errs.NewAt(errs.UnresolvedAlias, v.Pos.Line, v.Pos.Column, "undeclared type alias %q", v.Name)
		}
		return resolved, nil

	default:
		return nil, errs.New(errs.SyntaxError, "unhandled type node %T", t)
	}
}
