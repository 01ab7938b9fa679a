package translator

import (
	"github.com/katyo/c4dart/cdecl"
	"github.com/katyo/c4dart/logger"
	"github.com/katyo/c4dart/orderedmap"
)

// cffiType maps a scalar kind to its dart:ffi native type. Native types are
// fixed-width; they are the only representation allowed inside pointers and
// callback signatures.
func cffiType(kind cdecl.TypeKind) (string, bool) {
	switch kind {
	case cdecl.KindVoid:
		return "Void", true
	case cdecl.KindBool:
		return "Uint8", true
	case cdecl.KindInt8:
		return "Int8", true
	case cdecl.KindUInt8:
		return "Uint8", true
	case cdecl.KindInt16:
		return "Int16", true
	case cdecl.KindUInt16:
		return "Uint16", true
	case cdecl.KindInt32:
		return "Int32", true
	case cdecl.KindUInt32:
		return "Uint32", true
	case cdecl.KindInt64:
		return "Int64", true
	case cdecl.KindUInt64:
		return "Uint64", true
	case cdecl.KindFloat32:
		return "Float", true
	case cdecl.KindFloat64:
		return "Double", true
	}
	return "", false
}

// dartType maps a scalar kind to the Dart type used at ordinary call sites.
// Integer widths collapse to int; floats keep only the single/double
// distinction. Callers needing exact widths must use the native layer.
func dartType(kind cdecl.TypeKind) (string, bool) {
	switch kind {
	case cdecl.KindVoid:
		return "void", true
	case cdecl.KindBool,
		cdecl.KindInt8, cdecl.KindUInt8,
		cdecl.KindInt16, cdecl.KindUInt16,
		cdecl.KindInt32, cdecl.KindUInt32,
		cdecl.KindInt64, cdecl.KindUInt64:
		return "int", true
	case cdecl.KindFloat32, cdecl.KindFloat64:
		return "double", true
	}
	return "", false
}

// translateType renders a type in the native (ffi) or logical (Dart) layer.
// Unsupported kinds render as a tagged placeholder so they stand out in the
// generated file; translation continues.
func translateType(typenames *orderedmap.Map[string, string], t *cdecl.Type, ffi bool) string {
	logger.Debugf("translate type: %s", t.Kind)

	if ffi {
		if name, ok := cffiType(t.Kind); ok {
			return name
		}
	} else {
		if name, ok := dartType(t.Kind); ok {
			return name
		}
	}

	switch t.Kind {
	case cdecl.KindPointer:
		// Pointees are always native, even in logical signatures.
		return "Pointer<" + translateType(typenames, t.Pointee, true) + ">"

	case cdecl.KindRecord:
		var name string
		if t.Decl != nil {
			name = t.Decl.Name
		}
		if xname, ok := typenames.Get(name); ok {
			return xname
		}
		return name

	case cdecl.KindFunctionProto:
		cb := funcDefFromType(typenames, t)
		return "NativeFunction<" + cb.CFFI + ">"

	default:
		logger.Errorf("unsupported type kind: %s", t.RawKind)
		return "<unsupported_type_kind:" + t.RawKind + ">"
	}
}

// typeAnnotation is the @-annotation put on struct fields, or empty when the
// field's kind has no native table entry (nested records, unsupported kinds).
func typeAnnotation(t *cdecl.Type) string {
	if name, ok := cffiType(t.Kind); ok {
		return "@" + name + "()"
	}
	return ""
}

// nativeType is the Dart-side field type token, empty under the same
// conditions as typeAnnotation.
func nativeType(t *cdecl.Type) string {
	if name, ok := dartType(t.Kind); ok {
		return name
	}
	return ""
}
