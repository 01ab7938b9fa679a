package cdecl

// TypeKind identifies the canonical (typedef-stripped) shape of a C type.
type TypeKind int

const (
	KindUnsupported TypeKind = iota
	KindVoid
	KindBool
	KindInt8
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindFloat32
	KindFloat64
	KindPointer
	KindRecord
	KindFunctionProto
)

func (k TypeKind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindUInt8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUInt16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUInt32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUInt64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindPointer:
		return "pointer"
	case KindRecord:
		return "record"
	case KindFunctionProto:
		return "function prototype"
	}
	return "unsupported"
}

// Type is a C type reference with its canonical kind resolved.
type Type struct {
	Kind TypeKind

	// Pointee is the pointed-to type of a pointer.
	Pointee *Type

	// Result and Args describe a function prototype.
	Result *Type
	Args   []*Type

	// Decl is the declaration behind the type as spelled at the use site:
	// the typedef declaration for typedef-sugared types, the struct or enum
	// declaration otherwise. It drives lazy translation of referenced
	// declarations and record-name lookup. Nil for primitives.
	Decl *Decl

	// RawKind is the source kind spelling of an unsupported type.
	RawKind string
}

// Primitive returns a scalar type of the given kind.
func Primitive(kind TypeKind) *Type {
	return &Type{Kind: kind}
}

// PointerTo returns a pointer type.
func PointerTo(pointee *Type) *Type {
	return &Type{Kind: KindPointer, Pointee: pointee}
}

// Proto returns a function prototype type.
func Proto(result *Type, args ...*Type) *Type {
	return &Type{Kind: KindFunctionProto, Result: result, Args: args}
}

// RecordOf returns a record type referencing decl.
func RecordOf(decl *Decl) *Type {
	return &Type{Kind: KindRecord, Decl: decl}
}

// Unsupported returns a type outside the recognized set, keeping the raw
// kind spelling for diagnostics.
func Unsupported(rawKind string) *Type {
	return &Type{Kind: KindUnsupported, RawKind: rawKind}
}
