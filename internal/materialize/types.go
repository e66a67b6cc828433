package materialize

import (
	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/errs"
	"github.com/efficios/tsdl-go/internal/ast"
)

// materializeType converts a resolved ast.Type into its document.Type
// counterpart (spec.md §4.4). By this point internal/resolve has already
// substituted every AliasRef/StructRef/VariantRef, so only concrete
// constructors remain.
func (m *materializer) materializeType(t ast.Type) (document.Type, error) {
	switch v := t.(type) {
	case *ast.IntegerType:
		return m.materializeInteger(v)
	case *ast.FloatingPointType:
		return m.materializeFloatingPoint(v)
	case *ast.StringType:
		return m.materializeString(v)
	case *ast.EnumType:
		return m.materializeEnum(v)
	case *ast.StructFull:
		return m.materializeStruct(v)
	case *ast.VariantFull:
		return m.materializeVariant(v)
	default:
		return nil, errs.New(errs.SyntaxError, "unresolved type node %T reached the materializer", t)
	}
}

func (m *materializer) materializeInteger(it *ast.IntegerType) (*document.Integer, error) {
	out := &document.Integer{Align: 1, Base: 10, ByteOrder: document.NativeByteOrder, Encoding: document.NoEncoding}
	sizeSet := false
	for _, a := range it.Assignments {
		switch a.Key {
		case "size":
			n, ok := evalInt(a.Value)
			if !ok {
				return nil, errs.New(errs.SyntaxError, "integer.size must be a constant integer")
			}
			out.Size = int(n)
			sizeSet = true
		case "align":
			n, ok := evalInt(a.Value)
			if !ok {
				return nil, errs.New(errs.SyntaxError, "integer.align must be a constant integer")
			}
			out.Align = int(n)
		case "signed":
			b, err := decodeBool(a.Value)
			if err != nil {
				return nil, err
			}
			out.Signed = b
		case "byte_order":
			bo, err := decodeByteOrder(a.Value)
			if err != nil {
				return nil, err
			}
			out.ByteOrder = bo
		case "base":
			b, err := decodeBase(a.Value)
			if err != nil {
				return nil, err
			}
			out.Base = b
		case "encoding":
			enc, err := decodeEncoding(a.Value)
			if err != nil {
				return nil, err
			}
			out.Encoding = enc
		case "map":
			path, ok := exprAsPath(a.Value)
			if !ok || len(path) == 0 || path[0] != "clock" {
				return nil, errs.New(errs.InvalidClockMap, "integer.map must be a dotted path beginning with \"clock\"")
			}
			out.Map = document.Path(path)
		default:
			return nil, errs.New(errs.SyntaxError, "unknown integer assignment key %q", a.Key)
		}
	}
	if !sizeSet {
		return nil, errs.New(errs.MissingRequired, "integer is missing required field \"size\"")
	}
	return out, nil
}

func (m *materializer) materializeFloatingPoint(ft *ast.FloatingPointType) (*document.FloatingPoint, error) {
	out := &document.FloatingPoint{Align: 1, ByteOrder: document.NativeByteOrder}
	expSet, mantSet := false, false
	for _, a := range ft.Assignments {
		switch a.Key {
		case "exp_dig":
			n, ok := evalInt(a.Value)
			if !ok {
				return nil, errs.New(errs.SyntaxError, "floating_point.exp_dig must be a constant integer")
			}
			out.ExpDig = int(n)
			expSet = true
		case "mant_dig":
			n, ok := evalInt(a.Value)
			if !ok {
				return nil, errs.New(errs.SyntaxError, "floating_point.mant_dig must be a constant integer")
			}
			out.MantDig = int(n)
			mantSet = true
		case "align":
			n, ok := evalInt(a.Value)
			if !ok {
				return nil, errs.New(errs.SyntaxError, "floating_point.align must be a constant integer")
			}
			out.Align = int(n)
		case "byte_order":
			bo, err := decodeByteOrder(a.Value)
			if err != nil {
				return nil, err
			}
			out.ByteOrder = bo
		default:
			return nil, errs.New(errs.SyntaxError, "unknown floating_point assignment key %q", a.Key)
		}
	}
	if !expSet || !mantSet {
		return nil, errs.New(errs.MissingRequired, "floating_point is missing required field(s) \"exp_dig\"/\"mant_dig\"")
	}
	return out, nil
}

func (m *materializer) materializeString(st *ast.StringType) (*document.String, error) {
	out := &document.String{Encoding: document.NoEncoding}
	for _, a := range st.Assignments {
		switch a.Key {
		case "encoding":
			enc, err := decodeEncoding(a.Value)
			if err != nil {
				return nil, err
			}
			out.Encoding = enc
		default:
			return nil, errs.New(errs.SyntaxError, "unknown string assignment key %q", a.Key)
		}
	}
	return out, nil
}

func (m *materializer) materializeEnum(et *ast.EnumType) (*document.Enum, error) {
	integerType, ok := et.ResolvedInt.(*ast.IntegerType)
	if !ok {
		return nil, errs.New(errs.SyntaxError, "enum underlying type was not resolved to an integer")
	}
	integer, err := m.materializeInteger(integerType)
	if err != nil {
		return nil, err
	}

	labels := document.NewOrderedMap[string, document.Range]()
	var next int64
	for _, en := range et.Enumerators {
		var r document.Range
		switch {
		case en.HasRange:
			if en.Low > en.High {
				return nil, errs.New(errs.InvalidEnumRange, "enumerator %q has low %d > high %d", en.Label, en.Low, en.High)
			}
			r = document.Range{Low: en.Low, High: en.High}
			next = en.High + 1
		case en.HasValue:
			r = document.Range{Low: en.Value, High: en.Value}
			next = en.Value + 1
		default:
			r = document.Range{Low: next, High: next}
			next++
		}
		if labels.Has(en.Label) {
			return nil, errs.New(errs.DuplicateEnumLabel, "duplicate enumerator label %q", en.Label)
		}
		labels.Set(en.Label, r)
	}
	return &document.Enum{Integer: integer, Labels: labels}, nil
}

// materializeStruct builds the document.Struct for sf, or returns the
// previously materialized one if sf has already been seen: named structs
// referenced from multiple sites share identity (spec.md Lifecycle).
func (m *materializer) materializeStruct(sf *ast.StructFull) (*document.Struct, error) {
	if cached, ok := m.structCache[sf]; ok {
		return cached, nil
	}
	var align int
	if sf.Align != nil {
		align = int(*sf.Align)
	}
	out := &document.Struct{Align: align, Fields: document.NewOrderedMap[string, document.Type]()}
	m.structCache[sf] = out

	for _, entry := range sf.Entries {
		field, ok := entry.(*ast.Field)
		if !ok {
			continue // TypeAliasDecl / BareTypeDecl: pure declarations, no field
		}
		typ, err := m.materializeFieldType(field)
		if err != nil {
			return nil, err
		}
		out.Fields.Set(field.Decl.Name, document.CloneType(typ))
	}
	return out, nil
}

func (m *materializer) materializeVariant(vf *ast.VariantFull) (*document.Variant, error) {
	if vf.Tag == nil {
		name := "(anonymous)"
		if vf.Name != nil {
			name = *vf.Name
		}
		return nil, errs.New(errs.MissingRequired, "variant %q is missing a <tag>", name)
	}
	options := document.NewOrderedMap[string, document.Type]()
	for _, entry := range vf.Entries {
		field, ok := entry.(*ast.Field)
		if !ok {
			continue
		}
		typ, err := m.materializeFieldType(field)
		if err != nil {
			return nil, err
		}
		options.Set(field.Decl.Name, document.CloneType(typ))
	}
	return &document.Variant{Tag: document.Path(vf.Tag), Options: options}, nil
}

// materializeFieldType materializes a field's base type and chains its
// subscripts onto it, left to right, outermost first (spec.md §4.4
// "Field materialization").
func (m *materializer) materializeFieldType(f *ast.Field) (document.Type, error) {
	base, err := m.materializeType(f.Type)
	if err != nil {
		return nil, err
	}
	elem := base
	for i := len(f.Decl.Subscripts) - 1; i >= 0; i-- {
		elem, err = wrapSubscript(f.Decl.Subscripts[i], elem)
		if err != nil {
			return nil, err
		}
	}
	return elem, nil
}

// wrapSubscript applies a single subscript to elem: a constant integer
// yields an Array, a dotted path yields a Sequence (spec.md §4.2/§4.4).
func wrapSubscript(sub ast.Expr, elem document.Type) (document.Type, error) {
	if n, ok := evalInt(sub); ok {
		return &document.Array{Length: n, Element: elem}, nil
	}
	if path, ok := exprAsPath(sub); ok {
		return &document.Sequence{Length: document.Path(path), Element: elem}, nil
	}
	return nil, errs.New(errs.SyntaxError, "subscript must be a constant integer or a dotted path")
}
