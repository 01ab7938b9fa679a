// Package translator walks the cdecl declaration tree and renders Dart FFI
// bindings into a coder tree.
//
// One run visits the root's children twice. Pass one handles functions:
// every type reachable through a signature is translated lazily at first
// reference, so record-name lookups never see a forward gap. Pass two picks
// up the remaining standalone enums, structs and typedefs in source order.
// The export registry guarantees each source name is emitted at most once
// across both passes.
package translator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katyo/c4dart/cdecl"
	"github.com/katyo/c4dart/coder"
	"github.com/katyo/c4dart/logger"
	"github.com/katyo/c4dart/orderedmap"
)

// Translator holds the mutable state of one translation run. It is not safe
// for concurrent use; a run is strictly single-threaded.
type Translator struct {
	opts Options

	exported  *orderedmap.Map[string, struct{}]
	typenames *orderedmap.Map[string, string]

	calls     *orderedmap.Map[string, FuncDef]
	callbacks *orderedmap.Map[string, FuncDef]

	coder *coder.Coder
}

func New(opts Options) *Translator {
	return &Translator{
		opts:      opts,
		exported:  orderedmap.New[string, struct{}](),
		typenames: orderedmap.New[string, string](),
		calls:     orderedmap.New[string, FuncDef](),
		callbacks: orderedmap.New[string, FuncDef](),
		coder:     coder.New(),
	}
}

// Coder returns the accumulated output tree.
func (t *Translator) Coder() *coder.Coder {
	return t.coder
}

func (t *Translator) matchName(name string) bool {
	return t.opts.Match.MatchString(name)
}

// makeName rewrites a source name into its Dart-visible identifier. Pure:
// the same name always yields the same result within a run.
func (t *Translator) makeName(name string) string {
	return t.opts.Match.ReplaceAllString(name, t.opts.Replace)
}

// exportOnce registers name and reports whether this was its first
// registration. It is the sole deduplication gate; callers must check it
// before emitting a declaration's body.
func (t *Translator) exportOnce(name string) bool {
	if t.exported.Has(name) {
		return false
	}
	t.exported.Set(name, struct{}{})
	return true
}

// Translate renders every matching top-level declaration under root.
func (t *Translator) Translate(root *cdecl.Decl) error {
	t.coder.Line("import 'dart:ffi';")
	t.coder.Line("")

	for _, decl := range root.Children {
		if decl.Name == "" || !t.matchName(decl.Name) {
			continue
		}
		if decl.Kind == cdecl.DeclFunction {
			if err := t.parseFunction(decl.Name, decl); err != nil {
				return err
			}
		}
	}

	for _, decl := range root.Children {
		if decl.Name == "" || !t.matchName(decl.Name) {
			continue
		}
		xname := t.makeName(decl.Name)
		if !t.exportOnce(decl.Name) {
			continue
		}
		switch decl.Kind {
		case cdecl.DeclEnum:
			t.translateEnum(decl.Name, xname, decl)
			t.typenames.Set(decl.Name, xname)
		case cdecl.DeclStruct:
			if err := t.translateStruct(decl.Name, xname, decl.Children, decl.Comment); err != nil {
				return err
			}
			t.typenames.Set(decl.Name, xname)
		case cdecl.DeclTypedef:
			ok, err := t.translateTypedef(decl.Name, xname, decl)
			if err != nil {
				return err
			}
			if !ok {
				logger.Warnf("unparsed typedef: `%s`", decl.Name)
				continue
			}
			t.typenames.Set(decl.Name, xname)
		}
	}

	return nil
}

// parseFunction registers a direct call, extracting function-pointer
// arguments as named callbacks instead of inlining them.
func (t *Translator) parseFunction(name string, decl *cdecl.Decl) error {
	logger.Infof("parse function: `%s`", name)

	if decl.Result == nil {
		return errors.Newf("function `%s` has no result type", name)
	}
	if decl.Params == nil {
		return errors.Newf("function `%s` has no argument list", name)
	}

	xname := t.makeName(name)

	if err := t.parseType(decl.Result); err != nil {
		return err
	}

	num := 0
	for _, arg := range decl.Params {
		if pointee, ok := callbackPointee(arg.Type); ok {
			argName := arg.Name
			if argName == "" {
				argName = fmt.Sprintf("cb%d", num)
				num++
			}
			t.callbacks.Set(xname+"_"+argName, funcDefFromType(t.typenames, pointee))
			continue
		}

		if err := t.parseType(arg.Type); err != nil {
			return err
		}
	}

	t.calls.Set(xname, funcDefFromDecl(t.typenames, decl))
	return nil
}

// callbackPointee unwraps a pointer-to-function-prototype argument type.
func callbackPointee(t *cdecl.Type) (*cdecl.Type, bool) {
	if t != nil && t.Kind == cdecl.KindPointer && t.Pointee != nil && t.Pointee.Kind == cdecl.KindFunctionProto {
		return t.Pointee, true
	}
	return nil, false
}

// parseType translates the declaration behind a referenced type, exactly
// once, at first reference. Pointees do not require their record to be
// translated first, so pointer recursion alone cannot loop.
func (t *Translator) parseType(typ *cdecl.Type) error {
	if typ == nil {
		return nil
	}

	if typ.Kind == cdecl.KindPointer {
		return t.parseType(typ.Pointee)
	}

	decl := typ.Decl
	if decl == nil || decl.Name == "" {
		return nil
	}

	logger.Debugf("parse type: %s `%s`", decl.Kind, decl.Name)

	if t.exported.Has(decl.Name) {
		return nil
	}

	xname := t.makeName(decl.Name)

	switch decl.Kind {
	case cdecl.DeclEnum:
		t.translateEnum(decl.Name, xname, decl)
	case cdecl.DeclStruct:
		if err := t.translateStruct(decl.Name, xname, decl.Children, decl.Comment); err != nil {
			return err
		}
	case cdecl.DeclTypedef:
		ok, err := t.translateTypedef(decl.Name, xname, decl)
		if err != nil {
			return err
		}
		if !ok {
			logger.Warnf("unparsed typedef: `%s`", decl.Name)
			return nil
		}
	default:
		logger.Warnf("unparsed type declaration: %s `%s`", decl.Kind, decl.Name)
		return nil
	}

	t.exported.Set(decl.Name, struct{}{})
	t.typenames.Set(decl.Name, xname)
	return nil
}

// translateEnum emits one class of static constants. Each member drops the
// enum's own name as a case-insensitive prefix along with any underscores
// that follow it.
func (t *Translator) translateEnum(name, xname string, decl *cdecl.Decl) {
	logger.Infof("translate enum: `%s` as `%s`", name, xname)

	if decl.Comment != "" {
		t.coder.Comment(decl.Comment)
	}
	t.coder.BlockFunc("class "+xname, func(c *coder.Coder) {
		for _, member := range decl.Children {
			if member.Kind != cdecl.DeclEnumConstant {
				continue
			}
			c.Line(fmt.Sprintf("static const %s = %d;", withoutPrefix(member.Name, name), member.Value))
		}
	})
}

// translateStruct emits one Struct subclass. Fields with a scalar kind get a
// native annotation and a Dart type; anything else (nested records,
// unsupported kinds) is left unannotated rather than aborting the struct.
func (t *Translator) translateStruct(name, xname string, fields []*cdecl.Decl, comment string) error {
	logger.Infof("translate struct: `%s` as `%s`", name, xname)

	if comment != "" {
		t.coder.Comment(comment)
	}

	body := coder.New()
	for _, field := range fields {
		if field.Kind != cdecl.DeclField {
			continue
		}
		if field.Name == "" {
			return errors.Newf("struct `%s` has an unnamed field", name)
		}
		if field.Type == nil {
			return errors.Newf("field `%s` of struct `%s` has no type", field.Name, name)
		}

		logger.Infof("translate field: `%s` of type `%s`", field.Name, field.Type.Kind)

		if field.Comment != "" {
			body.Comment(field.Comment)
		}
		body.Line(fmt.Sprintf("%s %s %s;", typeAnnotation(field.Type), nativeType(field.Type), field.Name))
	}
	t.coder.Block("class "+xname+" extends Struct", body)

	return nil
}

// translateTypedef emits a typedef whose canonical underlying type is a
// record (as a struct class) or a function pointer (as a native/logical
// type alias pair, registered as a callback). Other typedefs report false
// and are skipped with a warning by the caller.
func (t *Translator) translateTypedef(name, xname string, decl *cdecl.Decl) (bool, error) {
	underlying := decl.Type
	if underlying == nil {
		return false, errors.Newf("typedef `%s` has no underlying type", name)
	}

	switch {
	case underlying.Kind == cdecl.KindRecord:
		record := underlying.Decl
		if record == nil || record.Kind != cdecl.DeclStruct {
			return false, nil
		}
		logger.Infof("translate typedef record: `%s` as `%s`", name, xname)
		if err := t.translateStruct(name, xname, record.Children, decl.Comment); err != nil {
			return false, err
		}
		return true, nil

	default:
		pointee, ok := callbackPointee(underlying)
		if !ok {
			return false, nil
		}
		logger.Infof("translate callback typedef: `%s` as `%s`", name, xname)

		cb := funcDefFromType(t.typenames, pointee)
		cb.Comment = decl.Comment

		if decl.Comment != "" {
			t.coder.Comment(decl.Comment)
		}
		t.coder.Line(fmt.Sprintf("typedef %sNative = %s;", xname, cb.CFFI))
		t.coder.Line(fmt.Sprintf("typedef %s = %s;", xname, cb.Dart))

		t.callbacks.Set(xname, cb)
		return true, nil
	}
}

// MakeClass emits the aggregate library wrapper: one field per callback, one
// per direct call, and a constructor that takes a DynamicLibrary handle plus
// the callbacks and binds every call to its C symbol. Ordering is insertion
// order, callbacks before calls.
func (t *Translator) MakeClass(name string) {
	logger.Infof("make class: `%s` (%d callbacks, %d calls)", name, t.callbacks.Len(), t.calls.Len())

	t.coder.Comment("Library class")

	t.coder.BlockFunc("class "+name, func(c *coder.Coder) {
		c.Comment("Callbacks")

		for _, cbName := range t.callbacks.Keys() {
			cb, _ := t.callbacks.Get(cbName)
			if cb.Comment != "" {
				c.Comment(cb.Comment)
			}
			c.Line(fmt.Sprintf("final Pointer<NativeFunction<%s>> _%s;", cb.CFFI, cbName))
		}

		c.Comment("Functions")

		for _, callName := range t.calls.Keys() {
			fn, _ := t.calls.Get(callName)
			if fn.Comment != "" {
				c.Comment(fn.Comment)
			}
			c.Line(fmt.Sprintf("final %s _%s;", fn.Dart, callName))
		}

		c.Comment("Constructor")
		c.Line(name + "(")
		c.Line("    DynamicLibrary dylib")
		for _, cbName := range t.callbacks.Keys() {
			c.Line(fmt.Sprintf("  , this._%s", cbName))
		}
		c.Line(")")

		c.Comment("Init functions")
		sep := ":"
		for _, callName := range t.calls.Keys() {
			fn, _ := t.calls.Get(callName)
			c.Line(fmt.Sprintf("%s _%s = dylib.lookup<NativeFunction<%s>>('%s').asFunction()",
				sep, callName, fn.CFFI, fn.Name))
			sep = ","
		}

		c.Line("{}")
	})
}

// withoutPrefix strips prefix (compared case-insensitively) and any
// underscores that follow it from the front of src.
func withoutPrefix(src, prefix string) string {
	if len(src) < len(prefix) || !strings.EqualFold(src[:len(prefix)], prefix) {
		return src
	}
	src = src[len(prefix):]
	for strings.HasPrefix(src, "_") {
		src = src[1:]
	}
	return src
}
