package resolve

import "github.com/efficios/tsdl-go/internal/ast"

// cloneVariantFull deep-copies a resolved *ast.VariantFull so that each
// VariantRef gets an independent option tree (spec.md invariant 7): "Two
// variant references to the same named variant produce independent
// option trees: mutating or reassigning the tag of one does not affect
// the other."
//
// By the time this runs, tmpl's Entries have already been resolved (no
// AliasRef/StructRef/VariantRef nodes remain), so the clone is a plain
// structural copy with no further name resolution.
func cloneVariantFull(tmpl *ast.VariantFull) *ast.VariantFull {
	name := tmpl.Name
	tag := append([]string(nil), tmpl.Tag...)
	return &ast.VariantFull{
		Name:    name,
		Tag:     tag,
		Entries: cloneEntries(tmpl.Entries),
		Pos:     tmpl.Pos,
	}
}

func cloneEntries(entries []ast.Entry) []ast.Entry {
	if entries == nil {
		return nil
	}
	out := make([]ast.Entry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e ast.Entry) ast.Entry {
	switch v := e.(type) {
	case *ast.ValueAssign:
		cp := *v
		return &cp
	case *ast.TypeAssign:
		cp := *v
		cp.Type = cloneType(v.Type)
		return &cp
	case *ast.TypeAliasDecl:
		cp := *v
		cp.Type = cloneType(v.Type)
		return &cp
	case *ast.BareTypeDecl:
		cp := *v
		cp.Type = cloneType(v.Type)
		return &cp
	case *ast.Field:
		cp := *v
		cp.Type = cloneType(v.Type)
		cp.Decl.Subscripts = append([]ast.Expr(nil), v.Decl.Subscripts...)
		return &cp
	default:
		return e
	}
}

// cloneType deep-copies a resolved Type. Struct identity is preserved
// (spec.md §4.3: "Named structures referenced from multiple sites may be
// shared by identity") — a *ast.StructFull is returned unchanged, not
// copied. Variants nested inside a cloned variant are cloned too, since
// they are now part of this reference's own independent option tree.
func cloneType(t ast.Type) ast.Type {
	switch v := t.(type) {
	case *ast.StructFull:
		return v
	case *ast.VariantFull:
		return cloneVariantFull(v)
	case *ast.IntegerType, *ast.FloatingPointType, *ast.StringType, *ast.EnumType:
		return v
	default:
		return v
	}
}
