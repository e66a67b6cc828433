package parser

import (
	"testing"

	"github.com/efficios/tsdl-go/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src, true)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return prog
}

func TestParseMinimalTrace(t *testing.T) {
	prog := mustParse(t, `
trace {
	major = 1;
	minor = 8;
	byte_order = le;
};
`)
	if len(prog.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(prog.Items))
	}
	scope, ok := prog.Items[0].(*ast.Scope)
	if !ok || scope.Kind != ast.TraceScope {
		t.Fatalf("got %#v, want a trace scope", prog.Items[0])
	}
	if len(scope.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(scope.Entries))
	}
	va, ok := scope.Entries[0].(*ast.ValueAssign)
	if !ok || len(va.Key) != 1 || va.Key[0] != "major" {
		t.Fatalf("entry 0: got %#v", scope.Entries[0])
	}
}

func TestParseTypeAssignWithInlineStruct(t *testing.T) {
	prog := mustParse(t, `
stream {
	packet.context := struct {
		integer { size = 32; } content_size;
	};
};
`)
	scope := prog.Items[0].(*ast.Scope)
	ta, ok := scope.Entries[0].(*ast.TypeAssign)
	if !ok {
		t.Fatalf("got %#v, want *ast.TypeAssign", scope.Entries[0])
	}
	if len(ta.Key) != 2 || ta.Key[0] != "packet" || ta.Key[1] != "context" {
		t.Fatalf("got key %v, want [packet context]", ta.Key)
	}
	st, ok := ta.Type.(*ast.StructFull)
	if !ok {
		t.Fatalf("got %#v, want *ast.StructFull", ta.Type)
	}
	if len(st.Entries) != 1 {
		t.Fatalf("got %d struct entries, want 1", len(st.Entries))
	}
	field, ok := st.Entries[0].(*ast.Field)
	if !ok || field.Decl.Name != "content_size" {
		t.Fatalf("got %#v", st.Entries[0])
	}
}

func TestParseIdentifierLedFieldWithSubscript(t *testing.T) {
	prog := mustParse(t, `
struct foo {
	unsigned long x[3];
};
`)
	bare := prog.Items[0].(*ast.BareTypeDecl)
	sf := bare.Type.(*ast.StructFull)
	field := sf.Entries[0].(*ast.Field)
	alias, ok := field.Type.(*ast.AliasRef)
	if !ok || alias.Name != "unsigned long" {
		t.Fatalf("got %#v, want AliasRef(unsigned long)", field.Type)
	}
	if field.Decl.Name != "x" {
		t.Fatalf("got field name %q, want x", field.Decl.Name)
	}
	if len(field.Decl.Subscripts) != 1 {
		t.Fatalf("got %d subscripts, want 1", len(field.Decl.Subscripts))
	}
	lit, ok := field.Decl.Subscripts[0].(*ast.IntLiteral)
	if !ok || lit.Value != 3 {
		t.Fatalf("got subscript %#v, want IntLiteral(3)", field.Decl.Subscripts[0])
	}
}

func TestParseArrayOfArray(t *testing.T) {
	prog := mustParse(t, `
struct foo {
	integer { size = 8; } matrix[2][3];
};
`)
	bare := prog.Items[0].(*ast.BareTypeDecl)
	sf := bare.Type.(*ast.StructFull)
	field := sf.Entries[0].(*ast.Field)
	if len(field.Decl.Subscripts) != 2 {
		t.Fatalf("got %d subscripts, want 2", len(field.Decl.Subscripts))
	}
}

func TestParseSequenceWithDottedLength(t *testing.T) {
	prog := mustParse(t, `
struct foo {
	integer { size = 32; } len;
	integer { size = 8; } payload[len];
};
`)
	bare := prog.Items[0].(*ast.BareTypeDecl)
	sf := bare.Type.(*ast.StructFull)
	field := sf.Entries[1].(*ast.Field)
	path, ok := field.Decl.Subscripts[0].(*ast.PathExpr)
	if !ok || len(path.Path) != 1 || path.Path[0] != "len" {
		t.Fatalf("got %#v, want PathExpr(len)", field.Decl.Subscripts[0])
	}
}

func TestParseEnumWithRangeAndAuto(t *testing.T) {
	prog := mustParse(t, `
typealias enum : int8_t {
	LOW = 0 ... 9,
	MID,
	HIGH = 20
} := my_enum;
`)
	decl := prog.Items[0].(*ast.TypeAliasDecl)
	if decl.Name != "my_enum" {
		t.Fatalf("got name %q, want my_enum", decl.Name)
	}
	enum := decl.Type.(*ast.EnumType)
	if enum.IntTypeName != "int8_t" {
		t.Fatalf("got int type %q, want int8_t", enum.IntTypeName)
	}
	if len(enum.Enumerators) != 3 {
		t.Fatalf("got %d enumerators, want 3", len(enum.Enumerators))
	}
	if !enum.Enumerators[0].HasRange || enum.Enumerators[0].Low != 0 || enum.Enumerators[0].High != 9 {
		t.Fatalf("got %#v, want range 0...9", enum.Enumerators[0])
	}
	if enum.Enumerators[1].HasValue || enum.Enumerators[1].HasRange {
		t.Fatalf("got %#v, want a bare auto-valued label", enum.Enumerators[1])
	}
	if !enum.Enumerators[2].HasValue || enum.Enumerators[2].Value != 20 {
		t.Fatalf("got %#v, want value 20", enum.Enumerators[2])
	}
}

func TestParseNamedVariantDefinitionWithTag(t *testing.T) {
	prog := mustParse(t, `
event {
	fields := variant selector < id > {
		integer { size = 8; } a;
	};
};
`)
	scope := prog.Items[0].(*ast.Scope)
	ta := scope.Entries[0].(*ast.TypeAssign)
	vf, ok := ta.Type.(*ast.VariantFull)
	if !ok {
		t.Fatalf("got %#v, want *ast.VariantFull", ta.Type)
	}
	if vf.Name == nil || *vf.Name != "selector" {
		t.Fatalf("got name %v, want selector", vf.Name)
	}
	if len(vf.Tag) != 1 || vf.Tag[0] != "id" {
		t.Fatalf("got tag %v, want [id]", vf.Tag)
	}
}

func TestParseStrictOctalRejected(t *testing.T) {
	_, err := Parse(`trace { major = 089; };`, true)
	if err == nil {
		t.Fatalf("expected an error for 089 under strict octal")
	}
}

func TestParseDuplicateEventAcceptedSyntactically(t *testing.T) {
	// Duplicate event ids are a materializer-level invariant, not a
	// syntax error — the parser must accept this input.
	mustParse(t, `
stream {
	id = 0;
};
event {
	id = 0;
	stream_id = 0;
	name = "a";
};
event {
	id = 0;
	stream_id = 0;
	name = "b";
};
`)
}
