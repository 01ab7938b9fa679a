package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katyo/c4dart/cdecl"
	"github.com/katyo/c4dart/orderedmap"
)

func TestTranslateTypeScalars(t *testing.T) {
	names := orderedmap.New[string, string]()

	for _, tt := range []struct {
		kind       cdecl.TypeKind
		cffi, dart string
	}{
		{cdecl.KindVoid, "Void", "void"},
		{cdecl.KindBool, "Uint8", "int"},
		{cdecl.KindInt8, "Int8", "int"},
		{cdecl.KindUInt8, "Uint8", "int"},
		{cdecl.KindInt16, "Int16", "int"},
		{cdecl.KindUInt16, "Uint16", "int"},
		{cdecl.KindInt32, "Int32", "int"},
		{cdecl.KindUInt32, "Uint32", "int"},
		{cdecl.KindInt64, "Int64", "int"},
		{cdecl.KindUInt64, "Uint64", "int"},
		{cdecl.KindFloat32, "Float", "double"},
		{cdecl.KindFloat64, "Double", "double"},
	} {
		typ := cdecl.Primitive(tt.kind)
		assert.Equal(t, tt.cffi, translateType(names, typ, true), "native %s", tt.kind)
		assert.Equal(t, tt.dart, translateType(names, typ, false), "logical %s", tt.kind)
	}
}

// Pointees render in the native layer even inside a logical signature.
func TestTranslateTypePointer(t *testing.T) {
	names := orderedmap.New[string, string]()
	typ := cdecl.PointerTo(cdecl.Primitive(cdecl.KindUInt8))

	assert.Equal(t, "Pointer<Uint8>", translateType(names, typ, true))
	assert.Equal(t, "Pointer<Uint8>", translateType(names, typ, false))
}

func TestTranslateTypeNestedPointer(t *testing.T) {
	names := orderedmap.New[string, string]()
	typ := cdecl.PointerTo(cdecl.PointerTo(cdecl.Primitive(cdecl.KindVoid)))

	assert.Equal(t, "Pointer<Pointer<Void>>", translateType(names, typ, true))
}

func TestTranslateTypeRecord(t *testing.T) {
	names := orderedmap.New[string, string]()
	names.Set("Point", "LibPoint")

	typ := cdecl.RecordOf(&cdecl.Decl{Kind: cdecl.DeclStruct, Name: "Point"})
	assert.Equal(t, "LibPoint", translateType(names, typ, true))
	assert.Equal(t, "LibPoint", translateType(names, typ, false))

	// Unregistered records fall back to the source name.
	other := cdecl.RecordOf(&cdecl.Decl{Kind: cdecl.DeclStruct, Name: "Rect"})
	assert.Equal(t, "Rect", translateType(names, other, true))
}

func TestTranslateTypeFunctionProto(t *testing.T) {
	names := orderedmap.New[string, string]()
	typ := cdecl.Proto(cdecl.Primitive(cdecl.KindVoid), cdecl.Primitive(cdecl.KindInt32))

	assert.Equal(t, "NativeFunction<Void Function(Int32)>", translateType(names, typ, true))
}

func TestTranslateTypeUnsupported(t *testing.T) {
	names := orderedmap.New[string, string]()
	typ := cdecl.Unsupported("Complex")

	assert.Equal(t, "<unsupported_type_kind:Complex>", translateType(names, typ, true))
	assert.Equal(t, "<unsupported_type_kind:Complex>", translateType(names, typ, false))
}

func TestTypeAnnotation(t *testing.T) {
	assert.Equal(t, "@Int32()", typeAnnotation(cdecl.Primitive(cdecl.KindInt32)))
	assert.Equal(t, "@Double()", typeAnnotation(cdecl.Primitive(cdecl.KindFloat64)))
	assert.Equal(t, "", typeAnnotation(cdecl.PointerTo(cdecl.Primitive(cdecl.KindVoid))))
	assert.Equal(t, "", typeAnnotation(cdecl.Unsupported("Complex")))
}

func TestNativeType(t *testing.T) {
	assert.Equal(t, "int", nativeType(cdecl.Primitive(cdecl.KindUInt16)))
	assert.Equal(t, "double", nativeType(cdecl.Primitive(cdecl.KindFloat32)))
	assert.Equal(t, "", nativeType(cdecl.PointerTo(cdecl.Primitive(cdecl.KindVoid))))
}

func TestFuncDefFromDecl(t *testing.T) {
	names := orderedmap.New[string, string]()

	decl := &cdecl.Decl{
		Kind:   cdecl.DeclFunction,
		Name:   "add",
		Result: cdecl.Primitive(cdecl.KindInt32),
		Params: []cdecl.Param{
			{Name: "a", Type: cdecl.Primitive(cdecl.KindInt32)},
			{Name: "b", Type: cdecl.Primitive(cdecl.KindInt32)},
		},
	}

	fd := funcDefFromDecl(names, decl)
	assert.Equal(t, "add", fd.Name)
	assert.Equal(t, "Int32 Function(Int32 a, Int32 b)", fd.CFFI)
	assert.Equal(t, "int Function(int a, int b)", fd.Dart)
}

func TestFuncDefFromType(t *testing.T) {
	names := orderedmap.New[string, string]()

	proto := cdecl.Proto(
		cdecl.Primitive(cdecl.KindVoid),
		cdecl.PointerTo(cdecl.Primitive(cdecl.KindUInt8)),
		cdecl.Primitive(cdecl.KindUInt32),
	)

	fd := funcDefFromType(names, proto)
	assert.Empty(t, fd.Name)
	assert.Equal(t, "Void Function(Pointer<Uint8>, Uint32)", fd.CFFI)
	assert.Equal(t, "void Function(Pointer<Uint8>, int)", fd.Dart)
}
