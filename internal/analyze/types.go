package analyze

import (
	"go/types"
	"reflect"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g. "example/store"
	Name    string // e.g. "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Kind represents the kind of an annotated definition.
type Kind int

const (
	// KindStruct is a plain struct schema.
	KindStruct Kind = iota
	// KindUnion is an interface schema whose concrete shapes are variant
	// structs.
	KindUnion
	// KindVariant is a struct belonging to a union.
	KindVariant
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Render classifies how a field value is turned into canonical key text.
type Render int

const (
	// RenderNone marks a type with no canonical string form.
	RenderNone Render = iota
	// RenderString is a string-kinded value used as-is.
	RenderString
	// RenderInt is a signed integer formatted base 10.
	RenderInt
	// RenderUint is an unsigned integer formatted base 10.
	RenderUint
	// RenderBool is formatted "true"/"false".
	RenderBool
	// RenderStringer calls the value's String() string method.
	RenderStringer
)

// String returns a human-readable render name.
func (r Render) String() string {
	switch r {
	case RenderString:
		return "string"
	case RenderInt:
		return "int"
	case RenderUint:
		return "uint"
	case RenderBool:
		return "bool"
	case RenderStringer:
		return "stringer"
	default:
		return "none"
	}
}

// Displayable reports whether the classification supports canonical string
// rendering at all.
func (r Render) Displayable() bool {
	return r != RenderNone
}

// FieldDef describes one field of an annotated struct or variant.
type FieldDef struct {
	// Name is the Go field name.
	Name string
	// TypeExpr is the field type rendered relative to its own package,
	// e.g. "string", "uint64", "time.Time".
	TypeExpr string
	// Tag is the raw struct tag.
	Tag reflect.StructTag
	// Render is the field's canonical-string classification.
	Render Render
	// GoType is the original go/types type, when loaded from source.
	GoType types.Type
	// Index is the field's position in declaration order.
	Index int
}

// TypeParam describes one generic parameter of an annotated type.
type TypeParam struct {
	// Name is the parameter name, e.g. "T".
	Name string
	// Constraint is the constraint rendered relative to the schema's
	// package, e.g. "any" or "fmt.Stringer".
	Constraint string
	// ConstraintImports lists import paths the constraint text references.
	ConstraintImports []string
	// Displayable reports whether the constraint's method set carries
	// String() string, i.e. values of the parameter can render key text.
	Displayable bool
}

// SchemaDef is one annotated type definition discovered in a loaded package.
type SchemaDef struct {
	// ID identifies the annotated type.
	ID TypeID
	// Kind is struct, union, or variant.
	Kind Kind
	// Directive is the raw attribute text following the directive marker.
	Directive string
	// PkgName is the package the definition lives in.
	PkgName string
	// Dir is the directory generated output for this definition goes to.
	Dir string
	// Fields lists the struct fields in declaration order. Empty for
	// unions.
	Fields []FieldDef
	// TypeParams lists generic parameters in declaration order.
	TypeParams []TypeParam
	// Variants lists a union's variant definitions in discovery order.
	Variants []*SchemaDef
	// UnionName is, for variants, the "of=" target named in the directive.
	UnionName string
	// ImplementsUnion reports, for variants, whether the struct satisfies
	// the union interface.
	ImplementsUnion bool

	// goType is the named go/types type, when loaded from source.
	goType types.Type
}

// GoType returns the named go/types type, or nil for hand-built definitions.
func (d *SchemaDef) GoType() types.Type {
	return d.goType
}

// Field returns the field with the given name, or nil.
func (d *SchemaDef) Field(name string) *FieldDef {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}

	return nil
}

// TypeParamByName returns the generic parameter with the given name, or nil.
func (d *SchemaDef) TypeParamByName(name string) *TypeParam {
	for i := range d.TypeParams {
		if d.TypeParams[i].Name == name {
			return &d.TypeParams[i]
		}
	}

	return nil
}

// Generic reports whether the definition declares type parameters.
func (d *SchemaDef) Generic() bool {
	return len(d.TypeParams) > 0
}
