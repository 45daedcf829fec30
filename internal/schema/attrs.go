package schema

import "github.com/newsnet-africa/netabase-sub001/internal/analyze"

// DefaultSeparator joins composite key parts unless the container overrides
// it.
const DefaultSeparator = "::"

// ContainerAttrs is the parsed per-type annotation set.
type ContainerAttrs struct {
	// Prefix, when non-empty, is prepended to every computed key as
	// prefix+separator.
	Prefix string
	// Version is emitted as schema metadata. It is never key material, so
	// keys stay stable across schema versions.
	Version string
	// Separator joins composite key parts. Defaults to DefaultSeparator.
	Separator string
	// SerdeCompat routes serialization through the compatibility codec
	// instead of the native binary codec.
	SerdeCompat bool
	// ItemKeyClosure names a registered transform that maps a whole
	// instance to its key text. Mutually exclusive with is_key fields.
	ItemKeyClosure string
}

// FieldAttrs is the parsed per-field annotation set.
type FieldAttrs struct {
	// IsKey marks the field as a key contributor.
	IsKey bool
	// KeyTransform names a registered transform applied to the field value
	// before it joins the key.
	KeyTransform string
	// Index marks the field for secondary-index emission.
	Index bool
	// Optional marks the field as optional. Optional fields may not
	// contribute to the key.
	Optional bool
}

// FieldModel pairs a discovered field with its parsed attributes.
type FieldModel struct {
	Field *analyze.FieldDef
	Attrs FieldAttrs
}

// Model is the validated configuration object for one annotated definition.
type Model struct {
	// Def is the underlying discovered definition.
	Def *analyze.SchemaDef
	// Container holds the parsed container attributes.
	Container ContainerAttrs
	// Fields pairs each field with its attributes, in declaration order.
	Fields []FieldModel
	// Variants holds, for unions, one model per variant in discovery
	// order. Variant models carry no container attributes of their own.
	Variants []*Model
}

// Construct returns the diagnostic name of the modeled type.
func (m *Model) Construct() string {
	return m.Def.ID.String()
}

// KeyFields returns the fields marked is_key, in declaration order.
func (m *Model) KeyFields() []*FieldModel {
	var out []*FieldModel

	for i := range m.Fields {
		if m.Fields[i].Attrs.IsKey {
			out = append(out, &m.Fields[i])
		}
	}

	return out
}

// IndexFields returns the fields marked index, in declaration order.
func (m *Model) IndexFields() []*FieldModel {
	var out []*FieldModel

	for i := range m.Fields {
		if m.Fields[i].Attrs.Index {
			out = append(out, &m.Fields[i])
		}
	}

	return out
}
