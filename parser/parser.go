// Package parser turns a C header into the cdecl declaration model using
// libclang (via go-clang). It is the only package that touches clang; the
// translator sees nothing but cdecl values.
package parser

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-clang/clang-v13/clang"

	"github.com/katyo/c4dart/cdecl"
)

// Config controls header parsing.
type Config struct {
	// IncludePaths are extra -I search directories.
	IncludePaths []string

	// DetectSystemIncludes discovers the system search path by invoking
	// the clang driver once before parsing.
	DetectSystemIncludes bool
}

// ParseHeader parses the header at path into a root declaration whose
// children are the header's top-level declarations in source order.
func ParseHeader(path string, cfg Config) (*cdecl.Decl, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "unable to read header `%s`", path)
	}

	args := []string{"-xc"}

	if cfg.DetectSystemIncludes {
		paths, err := SystemIncludePaths()
		if err != nil {
			return nil, errors.Wrap(err, "system include discovery failed")
		}
		for _, p := range paths {
			args = append(args, "-isystem"+p)
		}
	}

	for _, p := range cfg.IncludePaths {
		args = append(args, "-I"+p)
	}

	idx := clang.NewIndex(0, 1)
	defer idx.Dispose()

	tu := idx.ParseTranslationUnit(path, args, nil, 0)
	if tu == (clang.TranslationUnit{}) {
		return nil, errors.Newf("failed to parse translation unit `%s`", path)
	}
	defer tu.Dispose()

	conv := newConverter()
	return conv.root(tu.TranslationUnitCursor()), nil
}

// converter memoizes declaration conversion by cursor USR so that
// self-referential structs (reachable through pointer fields) terminate.
type converter struct {
	decls map[string]*cdecl.Decl
}

func newConverter() *converter {
	return &converter{decls: make(map[string]*cdecl.Decl)}
}

func (cv *converter) root(cursor clang.Cursor) *cdecl.Decl {
	root := &cdecl.Decl{Kind: cdecl.DeclUnsupported, RawKind: cursor.Kind().String()}

	cursor.Visit(func(child, parent clang.Cursor) clang.ChildVisitResult {
		root.Children = append(root.Children, cv.decl(child))
		return clang.ChildVisit_Continue
	})

	return root
}

func (cv *converter) decl(cursor clang.Cursor) *cdecl.Decl {
	usr := cursor.USR()
	if usr != "" {
		if d, ok := cv.decls[usr]; ok {
			return d
		}
	}

	d := &cdecl.Decl{
		Name:    cursor.Spelling(),
		Comment: cursor.RawCommentText(),
	}
	// Registered before descending so cycles hit the memo.
	if usr != "" {
		cv.decls[usr] = d
	}

	switch cursor.Kind() {
	case clang.Cursor_EnumDecl:
		d.Kind = cdecl.DeclEnum
		cv.children(cursor, d)

	case clang.Cursor_StructDecl:
		d.Kind = cdecl.DeclStruct
		cv.children(cursor, d)

	case clang.Cursor_TypedefDecl:
		d.Kind = cdecl.DeclTypedef
		d.Type = cv.typ(cursor.TypedefDeclUnderlyingType())

	case clang.Cursor_FunctionDecl:
		d.Kind = cdecl.DeclFunction
		d.Result = cv.typ(cursor.ResultType())
		if n := int(cursor.NumArguments()); n >= 0 {
			d.Params = make([]cdecl.Param, 0, n)
			for i := 0; i < n; i++ {
				arg := cursor.Argument(uint32(i))
				d.Params = append(d.Params, cdecl.Param{
					Name: arg.Spelling(),
					Type: cv.typ(arg.Type()),
				})
			}
		}

	case clang.Cursor_FieldDecl:
		d.Kind = cdecl.DeclField
		d.Type = cv.typ(cursor.Type())

	case clang.Cursor_EnumConstantDecl:
		d.Kind = cdecl.DeclEnumConstant
		d.Value = cursor.EnumConstantDeclValue()

	default:
		d.Kind = cdecl.DeclUnsupported
		d.RawKind = cursor.Kind().String()
	}

	return d
}

func (cv *converter) children(cursor clang.Cursor, d *cdecl.Decl) {
	cursor.Visit(func(child, parent clang.Cursor) clang.ChildVisitResult {
		d.Children = append(d.Children, cv.decl(child))
		return clang.ChildVisit_Continue
	})
}

// typ converts a clang type. The canonical (typedef-stripped) type decides
// the kind; the declaration behind the type as spelled at the use site is
// kept so the translator can resolve names and translate referenced
// declarations lazily.
func (cv *converter) typ(t clang.Type) *cdecl.Type {
	canonical := t.CanonicalType()
	kind := canonical.Kind()

	if prim, ok := primitiveKind(kind); ok {
		return cdecl.Primitive(prim)
	}

	switch kind {
	case clang.Type_Pointer:
		pointee := t.PointeeType()
		if pointee.Kind() == clang.Type_Invalid {
			pointee = canonical.PointeeType()
		}
		return cdecl.PointerTo(cv.typ(pointee))

	case clang.Type_Record:
		out := &cdecl.Type{Kind: cdecl.KindRecord}
		out.Decl = cv.declaration(t)
		return out

	case clang.Type_FunctionProto, clang.Type_FunctionNoProto:
		result := cv.typ(canonical.ResultType())
		n := int(canonical.NumArgTypes())
		args := make([]*cdecl.Type, 0, n)
		for i := 0; i < n; i++ {
			args = append(args, cv.typ(canonical.ArgType(uint32(i))))
		}
		return cdecl.Proto(result, args...)

	default:
		out := cdecl.Unsupported(kind.Spelling())
		// Enums and other declared types outside the scalar set still
		// carry their declaration so the translator can emit it.
		out.Decl = cv.declaration(t)
		return out
	}
}

func (cv *converter) declaration(t clang.Type) *cdecl.Decl {
	decl := t.Declaration()
	if decl.IsNull() || decl.Kind() == clang.Cursor_NoDeclFound || decl.Spelling() == "" {
		return nil
	}
	return cv.decl(decl)
}

func primitiveKind(kind clang.TypeKind) (cdecl.TypeKind, bool) {
	switch kind {
	case clang.Type_Void:
		return cdecl.KindVoid, true
	case clang.Type_Bool:
		return cdecl.KindBool, true
	case clang.Type_Char_S, clang.Type_SChar:
		return cdecl.KindInt8, true
	case clang.Type_Char_U, clang.Type_UChar:
		return cdecl.KindUInt8, true
	case clang.Type_Short:
		return cdecl.KindInt16, true
	case clang.Type_UShort:
		return cdecl.KindUInt16, true
	case clang.Type_Int:
		return cdecl.KindInt32, true
	case clang.Type_UInt:
		return cdecl.KindUInt32, true
	case clang.Type_Long, clang.Type_LongLong:
		return cdecl.KindInt64, true
	case clang.Type_ULong, clang.Type_ULongLong:
		return cdecl.KindUInt64, true
	case clang.Type_Float:
		return cdecl.KindFloat32, true
	case clang.Type_Double:
		return cdecl.KindFloat64, true
	}
	return 0, false
}
