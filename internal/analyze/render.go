package analyze

import "go/types"

// RenderOf classifies how values of t turn into canonical key text. A type
// with a String() string method wins over its underlying kind, so named types
// control their own canonical form.
func RenderOf(t types.Type) Render {
	if t == nil {
		return RenderNone
	}

	if hasStringMethod(t) {
		return RenderStringer
	}

	if tp, ok := t.(*types.TypeParam); ok {
		if constraintHasStringMethod(tp) {
			return RenderStringer
		}

		return RenderNone
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return RenderNone
	}

	switch basic.Kind() {
	case types.String, types.UntypedString:
		return RenderString
	case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
		return RenderInt
	case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64, types.Uintptr:
		return RenderUint
	case types.Bool, types.UntypedBool:
		return RenderBool
	default:
		return RenderNone
	}
}

// hasStringMethod reports whether t's method set contains String() string.
func hasStringMethod(t types.Type) bool {
	ms := types.NewMethodSet(t)

	sel := ms.Lookup(nil, "String")
	if sel == nil {
		return false
	}

	fn, ok := sel.Obj().(*types.Func)
	if !ok {
		return false
	}

	return isStringSignature(fn.Type())
}

// constraintHasStringMethod reports whether a type parameter's constraint
// guarantees String() string on every instantiation.
func constraintHasStringMethod(tp *types.TypeParam) bool {
	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok {
		return false
	}

	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if m.Name() == "String" && isStringSignature(m.Type()) {
			return true
		}
	}

	return false
}

// isStringSignature reports whether t is func() string.
func isStringSignature(t types.Type) bool {
	sig, ok := t.(*types.Signature)
	if !ok {
		return false
	}

	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	res, ok := sig.Results().At(0).Type().(*types.Basic)

	return ok && res.Kind() == types.String
}
