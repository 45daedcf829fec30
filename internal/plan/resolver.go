package plan

import (
	"github.com/newsnet-africa/netabase-sub001/internal/common"
	"github.com/newsnet-africa/netabase-sub001/internal/diagnostic"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// Resolve validates the model and resolves its key strategy and
// serialization mode. Diagnostics are always returned; the plan is nil
// whenever any error was found, so invalid input can never reach emission.
func Resolve(m *schema.Model, reg *schema.Registry) (*Plan, *diagnostic.Diagnostics) {
	d := schema.Validate(m, reg)

	key := resolveKey(m, reg, d)

	if d.HasErrors() {
		return nil, d
	}

	return &Plan{
		Model:         m,
		Key:           key,
		Serialization: SelectSerialization(m),
	}, d
}

// resolveKey picks exactly one strategy for the model. First match wins;
// coexisting mechanisms were already rejected by validation.
func resolveKey(m *schema.Model, reg *schema.Registry, d *diagnostic.Diagnostics) KeySpec {
	spec := KeySpec{
		Prefix:    m.Container.Prefix,
		Separator: m.Container.Separator,
	}

	if closure := m.Container.ItemKeyClosure; closure != "" {
		spec.Strategy = StrategyItemClosure
		spec.ItemTransform = reg.Get(closure)

		return spec
	}

	if len(m.Variants) > 0 {
		return resolvePerVariant(m, reg, d, spec)
	}

	return resolveFields(m, reg, d, spec)
}

// resolveFields applies the field-marker rules to one struct or variant.
func resolveFields(m *schema.Model, reg *schema.Registry, d *diagnostic.Diagnostics, spec KeySpec) KeySpec {
	keyFields := m.KeyFields()

	switch {
	case common.IsEmpty(keyFields):
		d.AddError(diagnostic.CategoryKeyResolution, "no_key_mechanism", m.Construct(),
			"no field is marked is_key and no item_key_closure is configured",
			"mark at least one field with is_key or configure item_key_closure")

	case common.IsSingle(keyFields):
		fm, _ := common.First(keyFields)

		spec.Parts = []KeyPart{partFor(fm, reg)}
		if fm.Attrs.KeyTransform != "" {
			spec.Strategy = StrategyFieldClosure
		} else {
			spec.Strategy = StrategySingleField
		}

	case common.IsMultiple(keyFields):
		spec.Strategy = StrategyCompositeFields
		for _, fm := range keyFields {
			spec.Parts = append(spec.Parts, partFor(fm, reg))
		}
	}

	return spec
}

// resolvePerVariant resolves each union variant independently. A variant with
// no key fields is a resolution failure; there is no implicit default key.
func resolvePerVariant(m *schema.Model, reg *schema.Registry, d *diagnostic.Diagnostics, spec KeySpec) KeySpec {
	spec.Strategy = StrategyPerVariant

	for _, vm := range m.Variants {
		vspec := KeySpec{Prefix: spec.Prefix, Separator: spec.Separator}

		if common.IsEmpty(vm.KeyFields()) {
			d.AddError(diagnostic.CategoryKeyResolution, "unkeyable_variant", vm.Construct(),
				"variant has no is_key field and the union has no item_key_closure",
				"mark a field of the variant with is_key or configure item_key_closure on the union")

			continue
		}

		spec.Variants = append(spec.Variants, VariantKeySpec{
			Model: vm,
			Spec:  resolveFields(vm, reg, d, vspec),
		})
	}

	return spec
}

// partFor builds the assembly part for one marked field. A transform name
// that fails registry lookup was already reported by validation, so a nil
// pointer here never reaches emission.
func partFor(fm *schema.FieldModel, reg *schema.Registry) KeyPart {
	part := KeyPart{Field: fm.Field}

	if name := fm.Attrs.KeyTransform; name != "" {
		part.Transform = reg.Get(name)
	}

	return part
}
