package schema

import (
	"fmt"

	"github.com/newsnet-africa/netabase-sub001/internal/diagnostic"
	"github.com/newsnet-africa/netabase-sub001/internal/match"
)

// Validate runs the structural checks against a parsed model: key-mechanism
// exclusivity, key-field capability, and attribute well-formedness. All three
// run independently and aggregate, so one pass reports every defect at once.
// Any error blocks artifact generation.
func Validate(m *Model, reg *Registry) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}

	checkMechanismExclusivity(m, d)
	checkKeyCapabilities(m, reg, d)
	checkWellFormedness(m, d)

	return d
}

// checkMechanismExclusivity rejects types that declare both an item-level key
// closure and per-field key markers.
func checkMechanismExclusivity(m *Model, d *diagnostic.Diagnostics) {
	if m.Container.ItemKeyClosure == "" {
		return
	}

	marked := m.KeyFields()
	for _, vm := range m.Variants {
		marked = append(marked, vm.KeyFields()...)
	}

	if len(marked) == 0 {
		return
	}

	for _, fm := range marked {
		d.AddError(diagnostic.CategoryKeyResolution, "conflicting_key_mechanisms", m.Construct(),
			fmt.Sprintf("item_key_closure and the is_key marker on %s cannot coexist", fm.Field.Name),
			"pick one keying mechanism: either mark fields with is_key or supply item_key_closure")
	}
}

// checkKeyCapabilities verifies every key contributor can produce canonical
// string text and that referenced transforms exist with a usable signature.
func checkKeyCapabilities(m *Model, reg *Registry, d *diagnostic.Diagnostics) {
	checkModelKeyFields(m, reg, d)

	for _, vm := range m.Variants {
		checkModelKeyFields(vm, reg, d)
	}

	closure := m.Container.ItemKeyClosure
	if closure == "" {
		return
	}

	tf := reg.Get(closure)
	if tf == nil {
		d.AddError(diagnostic.CategoryConfiguration, "unknown_transform", m.Construct(),
			fmt.Sprintf("item_key_closure names unregistered transform %q", closure),
			unknownTransformRemedy(closure, reg))

		return
	}

	if !tf.Accepts(m.Def.ID.Name) {
		d.AddError(diagnostic.CategoryConfiguration, "transform_signature", m.Construct(),
			fmt.Sprintf("transform %q accepts %s, not %s", closure, tf.SourceType, m.Def.ID.Name),
			"register a transform whose source type is the annotated type")
	}
}

// checkModelKeyFields validates the key fields of one struct or variant.
func checkModelKeyFields(m *Model, reg *Registry, d *diagnostic.Diagnostics) {
	for _, fm := range m.KeyFields() {
		construct := m.Construct() + "." + fm.Field.Name

		if fm.Attrs.Optional {
			d.AddError(diagnostic.CategoryKeyResolution, "optional_key_field", construct,
				"an optional field cannot contribute to the key",
				"drop either the optional or the is_key marker")
		}

		if name := fm.Attrs.KeyTransform; name != "" {
			tf := reg.Get(name)
			if tf == nil {
				d.AddError(diagnostic.CategoryConfiguration, "unknown_transform", construct,
					fmt.Sprintf("key_transform names unregistered transform %q", name),
					unknownTransformRemedy(name, reg))

				continue
			}

			if !tf.Accepts(fm.Field.TypeExpr) {
				d.AddError(diagnostic.CategoryConfiguration, "transform_signature", construct,
					fmt.Sprintf("transform %q accepts %s, not %s", name, tf.SourceType, fm.Field.TypeExpr),
					"register a transform whose source type matches the field")
			}

			// The transform supplies the string form.
			continue
		}

		if !fm.Field.Render.Displayable() {
			d.AddError(diagnostic.CategoryKeyResolution, "non_displayable_key_field", construct,
				fmt.Sprintf("key field of type %s has no canonical string form (displayable capability missing)", fm.Field.TypeExpr),
				"use a string/integer/bool field, provide a String() string method in the type or constraint, or register a key_transform")
		}
	}
}

// unknownTransformRemedy builds the remedy text for an unregistered
// transform name, suggesting the closest registered name when one is a
// plausible typo.
func unknownTransformRemedy(name string, reg *Registry) string {
	remedy := "declare the transform in the manifest"

	if suggestion := match.Suggest(name, reg.Names()); suggestion != "" {
		remedy = fmt.Sprintf("did you mean %q? %s", suggestion, remedy)
	}

	return remedy
}

// checkWellFormedness re-asserts attribute-level invariants on the assembled
// model. Parse already rejects malformed directive text; this catches models
// assembled programmatically.
func checkWellFormedness(m *Model, d *diagnostic.Diagnostics) {
	if m.Container.Separator == "" {
		d.AddError(diagnostic.CategoryConfiguration, "empty_separator", m.Construct(),
			"separator must not be empty",
			"use a non-empty separator or the default \"::\"")
	}
}
