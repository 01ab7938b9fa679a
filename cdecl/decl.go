// Package cdecl defines the declaration and type model the translator
// consumes. It is a closed set: every construct the generator recognizes has
// its own kind, and everything else is carried as an Unsupported node with
// the raw kind spelling kept for diagnostics.
//
// Values are built once by the parser (or by tests) and are read-only
// afterwards; the translator never mutates them.
package cdecl

// DeclKind identifies a declaration.
type DeclKind int

const (
	DeclUnsupported DeclKind = iota
	DeclEnum
	DeclStruct
	DeclTypedef
	DeclFunction
	DeclField
	DeclEnumConstant
)

func (k DeclKind) String() string {
	switch k {
	case DeclEnum:
		return "enum"
	case DeclStruct:
		return "struct"
	case DeclTypedef:
		return "typedef"
	case DeclFunction:
		return "function"
	case DeclField:
		return "field"
	case DeclEnumConstant:
		return "enum constant"
	}
	return "unsupported"
}

// Param is one function argument. The name may be empty for unnamed
// parameters in prototypes.
type Param struct {
	Name string
	Type *Type
}

// Decl is a single C declaration.
//
// Which fields are meaningful depends on Kind: enums and structs carry
// Children (enum constants resp. fields), typedefs and fields carry Type,
// functions carry Result and Params, enum constants carry Value. Unsupported
// declarations keep the source kind spelling in RawKind.
type Decl struct {
	Kind    DeclKind
	Name    string
	Comment string

	Children []*Decl

	// Type is the field type or the typedef's canonical underlying type.
	Type *Type

	// Result and Params describe a function signature. A nil Result or a
	// nil Params slice on a function declaration violates the provider
	// contract and aborts the run.
	Result *Type
	Params []Param

	// Value is the signed 64-bit value of an enum constant.
	Value int64

	RawKind string
}
