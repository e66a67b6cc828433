package materialize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/efficios/tsdl-go/document"
	"github.com/efficios/tsdl-go/internal/parser"
	"github.com/efficios/tsdl-go/internal/resolve"
)

func mustMaterialize(t *testing.T, src string) *document.Doc {
	t.Helper()
	prog, err := parser.Parse(src, true)
	require.NoError(t, err)
	prog, err = resolve.Resolve(prog)
	require.NoError(t, err)
	doc, err := Materialize(prog)
	require.NoError(t, err)
	return doc
}

func mustFailMaterialize(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.Parse(src, true)
	if err != nil {
		return err
	}
	prog, err = resolve.Resolve(prog)
	if err != nil {
		return err
	}
	_, err = Materialize(prog)
	require.Error(t, err, "expected an error materializing %q", src)
	return err
}

const minimalTrace = `
trace {
	major = 1;
	minor = 8;
};
clock {
	name = mono;
	freq = 1000000000;
};
stream {
	id = 0;
};
event {
	id = 0;
	stream_id = 0;
	name = "evt";
};
`

func TestMaterializeMinimalTrace(t *testing.T) {
	doc := mustMaterialize(t, minimalTrace)
	require.NotNil(t, doc.Trace)
	require.EqualValues(t, 1, doc.Trace.Major)
	require.EqualValues(t, 8, doc.Trace.Minor)
	require.Len(t, doc.Clocks(), 1)
	require.Equal(t, "mono", doc.Clocks()[0].Name)

	st, ok := doc.Stream(0)
	require.True(t, ok)
	require.Len(t, st.Events, 1)
	require.Equal(t, "evt", st.Events[0].Name)
}

func TestMaterializeIntegerAliasField(t *testing.T) {
	doc := mustMaterialize(t, `
typealias integer { size = 32; align = 8; } := uint32_t;
trace {
	major = 1;
	minor = 8;
	packet.header := struct {
		uint32_t magic;
	};
};
clock { name = c; freq = 1; };
stream { id = 0; };
event { id = 0; name = "e"; };
`)
	require.NotNil(t, doc.Trace.PacketHeader)
	ft, ok := doc.Trace.PacketHeader.Fields.Get("magic")
	require.True(t, ok)
	it, ok := ft.(*document.Integer)
	require.True(t, ok, "got %#v, want *document.Integer", ft)
	require.Equal(t, 32, it.Size)
	require.Equal(t, 8, it.Align)
}

func TestMaterializeArrayOfArray(t *testing.T) {
	doc := mustMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.context := struct {
		integer { size = 8; } matrix[2][3];
	};
};
event { id = 0; name = "e"; };
`)
	st, _ := doc.Stream(0)
	ctx := st.EventContext.(*document.Struct)
	field, ok := ctx.Fields.Get("matrix")
	require.True(t, ok)

	outer, ok := field.(*document.Array)
	require.True(t, ok)
	require.EqualValues(t, 2, outer.Length)

	inner, ok := outer.Element.(*document.Array)
	require.True(t, ok)
	require.EqualValues(t, 3, inner.Length)

	_, ok = inner.Element.(*document.Integer)
	require.True(t, ok)
}

func TestMaterializeSequenceWithDottedLength(t *testing.T) {
	doc := mustMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.context := struct {
		integer { size = 32; } len;
		integer { size = 8; } payload[len];
	};
};
event { id = 0; name = "e"; };
`)
	st, _ := doc.Stream(0)
	ctx := st.EventContext.(*document.Struct)
	field, ok := ctx.Fields.Get("payload")
	require.True(t, ok)

	seq, ok := field.(*document.Sequence)
	require.True(t, ok)
	require.Equal(t, document.Path{"len"}, seq.Length)
}

func TestMaterializeDuplicateEventIDFails(t *testing.T) {
	err := mustFailMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream { id = 0; };
event { id = 0; stream_id = 0; name = "a"; };
event { id = 0; stream_id = 0; name = "b"; };
`)
	require.Error(t, err)
}

func TestMaterializeMissingTraceVersionFails(t *testing.T) {
	mustFailMaterialize(t, `
trace { byte_order = le; };
clock { name = c; freq = 1; };
stream { id = 0; };
event { id = 0; name = "e"; };
`)
}

func TestMaterializeNoClocksFails(t *testing.T) {
	mustFailMaterialize(t, `
trace { major = 1; minor = 8; };
stream { id = 0; };
event { id = 0; name = "e"; };
`)
}

func TestMaterializeUnknownStreamFails(t *testing.T) {
	mustFailMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
event { id = 0; stream_id = 7; name = "e"; };
`)
}

func TestMaterializeEnumRangeThenAutoIncrement(t *testing.T) {
	doc := mustMaterialize(t, `
typealias integer { size = 8; } := int8_t;
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.context := struct {
		enum : int8_t {
			LOW = 0 ... 9,
			MID,
			HIGH = 20,
			HIGHER
		} state;
	};
};
event { id = 0; name = "e"; };
`)
	st, _ := doc.Stream(0)
	ctx := st.EventContext.(*document.Struct)
	field, _ := ctx.Fields.Get("state")
	en := field.(*document.Enum)

	mid, ok := en.Labels.Get("MID")
	require.True(t, ok)
	require.Equal(t, document.Range{Low: 10, High: 10}, mid)

	higher, ok := en.Labels.Get("HIGHER")
	require.True(t, ok)
	require.Equal(t, document.Range{Low: 21, High: 21}, higher)
}

func TestMaterializeEnumInvertedRangeFails(t *testing.T) {
	mustFailMaterialize(t, `
typealias integer { size = 8; } := int8_t;
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.context := struct {
		enum : int8_t { BAD = 9 ... 0 } state;
	};
};
event { id = 0; name = "e"; };
`)
}

func TestMaterializeVariantReferencesAreIndependent(t *testing.T) {
	doc := mustMaterialize(t, `
variant selector {
	integer { size = 8; } a;
	integer { size = 16; } b;
};
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.header := struct {
		integer { size = 8; } which;
		variant selector < which > v1;
	};
};
event {
	id = 0;
	name = "e";
	fields := struct {
		integer { size = 8; } which2;
		variant selector < which2 > v2;
	};
};
`)
	st, _ := doc.Stream(0)
	header := st.EventHeader.(*document.Struct)
	f1, _ := header.Fields.Get("v1")
	v1 := f1.(*document.Variant)

	ev := st.Events[0]
	fields := ev.Fields.(*document.Struct)
	f2, _ := fields.Fields.Get("v2")
	v2 := f2.(*document.Variant)

	require.Equal(t, document.Path{"which"}, v1.Tag)
	require.Equal(t, document.Path{"which2"}, v2.Tag)
	require.NotSame(t, v1.Options, v2.Options)
}

func TestMaterializeStructSharedByIdentity(t *testing.T) {
	doc := mustMaterialize(t, `
struct payload {
	integer { size = 8; } a;
};
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.header := struct payload;
	event.context := struct payload;
};
event { id = 0; name = "e"; };
`)
	st, _ := doc.Stream(0)
	header := st.EventHeader.(*document.Struct)
	context := st.EventContext.(*document.Struct)
	require.Same(t, header, context)
}

func TestMaterializeStructAlignDefaultsToUnset(t *testing.T) {
	doc := mustMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = c; freq = 1; };
stream {
	event.context := struct {
		integer { size = 8; } a;
	};
};
event { id = 0; name = "e"; };
`)
	st, _ := doc.Stream(0)
	ctx := st.EventContext.(*document.Struct)
	require.Equal(t, 0, ctx.Align)
}

func TestMaterializeClockNameRejectsQuotedString(t *testing.T) {
	mustFailMaterialize(t, `
trace { major = 1; minor = 8; };
clock { name = "mono"; freq = 1; };
stream { id = 0; };
event { id = 0; name = "e"; };
`)
}
