package plan

import (
	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// Strategy tags how a key string is produced for an instance.
type Strategy int

//go:generate go run golang.org/x/tools/cmd/stringer -type=Strategy -trimprefix=Strategy

const (
	// StrategySingleField renders the one key field canonically.
	StrategySingleField Strategy = iota
	// StrategyCompositeFields joins several key fields with the separator.
	StrategyCompositeFields
	// StrategyFieldClosure applies a transform to the one key field.
	StrategyFieldClosure
	// StrategyItemClosure passes the whole instance to a transform.
	StrategyItemClosure
	// StrategyPerVariant resolves each union variant independently.
	StrategyPerVariant
)

// KeyPart is one contributor to the assembled key, in declaration order.
type KeyPart struct {
	// Field is the contributing field.
	Field *analyze.FieldDef
	// Transform, when non-nil, supplies the part's string form instead of
	// canonical rendering.
	Transform *schema.TransformDef
}

// KeySpec is the resolved assembly plan for one type or variant.
type KeySpec struct {
	// Strategy tags the chosen mechanism.
	Strategy Strategy
	// Prefix, when non-empty, leads the key as prefix+separator.
	Prefix string
	// Separator joins the parts.
	Separator string
	// Parts lists the contributing fields in declaration order. Empty for
	// the closure strategies.
	Parts []KeyPart
	// ItemTransform is the whole-instance transform for ItemClosure.
	ItemTransform *schema.TransformDef
	// Variants holds, for PerVariant, each variant's own spec.
	Variants []VariantKeySpec
}

// VariantKeySpec pairs a union variant with its resolved key spec.
type VariantKeySpec struct {
	Model *schema.Model
	Spec  KeySpec
}

// Serialization describes the emitted codec behavior for one type.
type Serialization struct {
	// Compat routes encode/decode through the compatibility codec.
	Compat bool
	// DualDecode is always true: emitted decode retries with the other
	// codec before failing, so data written under the opposite mode stays
	// readable.
	DualDecode bool
}

// Plan is the full resolution result consumed by the emitters.
type Plan struct {
	Model         *schema.Model
	Key           KeySpec
	Serialization Serialization
}
