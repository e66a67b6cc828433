package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/efficios/tsdl-go/internal/ast"
	"github.com/efficios/tsdl-go/internal/parser"
)

func mustResolve(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(src, true)
	require.NoError(t, err)
	resolved, err := Resolve(prog)
	require.NoError(t, err)
	return resolved
}

func TestResolveAliasSubstitution(t *testing.T) {
	prog := mustResolve(t, `
typealias integer { size = 8; } := byte;
struct foo {
	byte x;
};
`)
	bare := prog.Items[1].(*ast.BareTypeDecl)
	sf := bare.Type.(*ast.StructFull)
	field := sf.Entries[0].(*ast.Field)
	_, ok := field.Type.(*ast.IntegerType)
	require.True(t, ok, "got %#v, want resolved *ast.IntegerType", field.Type)
}

func TestResolveUnknownAliasFails(t *testing.T) {
	_, err := func() (*ast.Program, error) {
		prog, err := parser.Parse(`
struct foo {
	nosuchalias x;
};
`, true)
		if err != nil {
			return nil, err
		}
		return Resolve(prog)
	}()
	require.Error(t, err, "expected an UnresolvedAlias error")
}

func TestResolveStructSharedByIdentity(t *testing.T) {
	prog := mustResolve(t, `
struct inner {
	integer { size = 8; } a;
};
struct outer1 {
	struct inner x;
};
struct outer2 {
	struct inner y;
};
`)
	f1 := prog.Items[1].(*ast.BareTypeDecl).Type.(*ast.StructFull).Entries[0].(*ast.Field)
	f2 := prog.Items[2].(*ast.BareTypeDecl).Type.(*ast.StructFull).Entries[0].(*ast.Field)
	s1 := f1.Type.(*ast.StructFull)
	s2 := f2.Type.(*ast.StructFull)
	require.Same(t, s1, s2, "expected shared struct identity")
}

func TestResolveVariantReferencesAreIndependent(t *testing.T) {
	prog := mustResolve(t, `
variant choice {
	integer { size = 8; } a;
	integer { size = 16; } b;
};
struct outer1 {
	variant choice < sel1 > v;
};
struct outer2 {
	variant choice < sel2 > v;
};
`)
	f1 := prog.Items[1].(*ast.BareTypeDecl).Type.(*ast.StructFull).Entries[0].(*ast.Field)
	f2 := prog.Items[2].(*ast.BareTypeDecl).Type.(*ast.StructFull).Entries[0].(*ast.Field)
	v1 := f1.Type.(*ast.VariantFull)
	v2 := f2.Type.(*ast.VariantFull)
	require.NotSame(t, v1, v2, "expected independent variant clones")
	require.Equal(t, "sel1", v1.Tag[0])
	require.Equal(t, "sel2", v2.Tag[0])

	// mutating one clone's tag must not affect the other (invariant 7)
	v1.Tag = []string{"mutated"}
	require.Equal(t, "sel2", v2.Tag[0])
}

func TestResolveUnknownVariantFails(t *testing.T) {
	_, err := func() (*ast.Program, error) {
		prog, err := parser.Parse(`
struct foo {
	variant nosuch < tag > v;
};
`, true)
		if err != nil {
			return nil, err
		}
		return Resolve(prog)
	}()
	require.Error(t, err, "expected an UnresolvedVariant error")
}
