package translator

import (
	"fmt"
	"strings"

	"github.com/katyo/c4dart/cdecl"
	"github.com/katyo/c4dart/orderedmap"
)

// FuncDef is a synthesized function signature rendered in both layers: CFFI
// carries the fixed-width native shape used at the foreign boundary, Dart the
// logical shape used at ordinary call sites.
type FuncDef struct {
	// Name is the C symbol name; empty for signatures synthesized from a
	// bare prototype type.
	Name    string
	Comment string
	CFFI    string
	Dart    string
}

// funcDefFromDecl builds the signature pair of a function declaration,
// keeping declared argument names.
func funcDefFromDecl(typenames *orderedmap.Map[string, string], decl *cdecl.Decl) FuncDef {
	cffiRes, dartRes := "Void", "void"
	if decl.Result != nil {
		cffiRes = translateType(typenames, decl.Result, true)
		dartRes = translateType(typenames, decl.Result, false)
	}

	return FuncDef{
		Name:    decl.Name,
		Comment: decl.Comment,
		CFFI:    fmt.Sprintf("%s Function(%s)", cffiRes, translateParams(typenames, decl.Params, true)),
		Dart:    fmt.Sprintf("%s Function(%s)", dartRes, translateParams(typenames, decl.Params, false)),
	}
}

// funcDefFromType builds the signature pair of a bare function prototype
// type (a function-pointer pointee); argument names are not available.
func funcDefFromType(typenames *orderedmap.Map[string, string], t *cdecl.Type) FuncDef {
	cffiRes, dartRes := "Void", "void"
	if t.Result != nil {
		cffiRes = translateType(typenames, t.Result, true)
		dartRes = translateType(typenames, t.Result, false)
	}

	return FuncDef{
		CFFI: fmt.Sprintf("%s Function(%s)", cffiRes, translateTypes(typenames, t.Args, true)),
		Dart: fmt.Sprintf("%s Function(%s)", dartRes, translateTypes(typenames, t.Args, false)),
	}
}

func translateParams(typenames *orderedmap.Map[string, string], params []cdecl.Param, ffi bool) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		text := translateType(typenames, p.Type, ffi)
		if p.Name != "" {
			text += " " + p.Name
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}

func translateTypes(typenames *orderedmap.Map[string, string], types []*cdecl.Type, ffi bool) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, translateType(typenames, t, ffi))
	}
	return strings.Join(parts, ", ")
}
