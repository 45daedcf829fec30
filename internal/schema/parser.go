package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/diagnostic"
	"github.com/newsnet-africa/netabase-sub001/internal/match"
)

// FieldTagKey is the struct tag key carrying field attributes.
const FieldTagKey = "netabase"

// Container attribute names.
const (
	optPrefix         = "prefix"
	optVersion        = "version"
	optSeparator      = "separator"
	optSerdeCompat    = "serde_compat"
	optItemKeyClosure = "item_key_closure"
)

// Field attribute names.
const (
	optIsKey        = "is_key"
	optKeyTransform = "key_transform"
	optIndex        = "index"
	optOptional     = "optional"
)

// Recognized option sets, used for "did you mean" remedies.
var (
	containerOptions = []string{optPrefix, optVersion, optSeparator, optSerdeCompat, optItemKeyClosure}
	fieldOptions     = []string{optIsKey, optKeyTransform, optIndex, optOptional}
)

// unknownOptionRemedy builds the remedy text for an unknown option,
// suggesting the closest recognized name when one is plausible.
func unknownOptionRemedy(key string, options []string) string {
	remedy := "supported options: " + strings.Join(options, ", ")

	if suggestion := match.Suggest(key, options); suggestion != "" {
		remedy = fmt.Sprintf("did you mean %q? %s", suggestion, remedy)
	}

	return remedy
}

// Parse turns a discovered definition into a Model, appending any
// configuration findings to d. The returned model is complete even when d
// gained errors; callers must check d before resolving against it.
func Parse(def *analyze.SchemaDef, d *diagnostic.Diagnostics) *Model {
	m := &Model{Def: def}

	switch def.Kind {
	case analyze.KindVariant:
		parseVariantDirective(def, d)
	default:
		m.Container = parseContainer(def.ID.String(), def.Directive, d)
	}

	for i := range def.Fields {
		field := &def.Fields[i]
		m.Fields = append(m.Fields, FieldModel{
			Field: field,
			Attrs: parseFieldTag(def.ID.String()+"."+field.Name, field.Tag.Get(FieldTagKey), d),
		})
	}

	for _, variant := range def.Variants {
		vm := Parse(variant, d)
		// Variants share the union's container configuration.
		vm.Container = m.Container
		m.Variants = append(m.Variants, vm)
	}

	return m
}

// parseContainer parses the directive argument text of a schema container.
func parseContainer(construct, directive string, d *diagnostic.Diagnostics) ContainerAttrs {
	attrs := ContainerAttrs{Separator: DefaultSeparator}
	seen := map[string]bool{}

	for _, tok := range tokenize(directive) {
		key, value, hasValue := strings.Cut(tok, "=")
		value = unquote(value)

		if seen[key] {
			d.AddError(diagnostic.CategoryConfiguration, "duplicate_attribute", construct,
				fmt.Sprintf("attribute %q specified more than once in %s attributes", key, analyze.SchemaMarker),
				"declare each attribute at most once")

			continue
		}

		seen[key] = true

		switch key {
		case optPrefix:
			if value == "" {
				d.AddError(diagnostic.CategoryConfiguration, "empty_attribute", construct,
					fmt.Sprintf("attribute %q has an empty value", key),
					"give the attribute a value or drop it")

				continue
			}

			attrs.Prefix = value

		case optVersion:
			attrs.Version = value

		case optSeparator:
			if value == "" {
				d.AddError(diagnostic.CategoryConfiguration, "empty_separator", construct,
					"separator must not be empty",
					"use a non-empty separator or drop the attribute for the default \"::\"")

				continue
			}

			attrs.Separator = value

		case optSerdeCompat:
			if !hasValue {
				attrs.SerdeCompat = true

				continue
			}

			b, err := strconv.ParseBool(value)
			if err != nil {
				d.AddError(diagnostic.CategoryConfiguration, "malformed_attribute", construct,
					fmt.Sprintf("attribute %q wants a boolean, got %q", key, value),
					"use serde_compat, serde_compat=true or serde_compat=false")

				continue
			}

			attrs.SerdeCompat = b

		case optItemKeyClosure:
			if value == "" {
				d.AddError(diagnostic.CategoryConfiguration, "empty_attribute", construct,
					fmt.Sprintf("attribute %q has an empty value", key),
					"name a transform registered in the manifest")

				continue
			}

			attrs.ItemKeyClosure = value

		default:
			d.AddError(diagnostic.CategoryConfiguration, "unknown_attribute", construct,
				fmt.Sprintf("unknown option %q in %s attributes", key, analyze.SchemaMarker),
				unknownOptionRemedy(key, containerOptions))
		}
	}

	return attrs
}

// parseVariantDirective checks that a variant directive carries nothing
// beyond its of= linkage, which the loader already consumed.
func parseVariantDirective(def *analyze.SchemaDef, d *diagnostic.Diagnostics) {
	seen := map[string]bool{}

	for _, tok := range tokenize(def.Directive) {
		key, _, _ := strings.Cut(tok, "=")

		if seen[key] {
			d.AddError(diagnostic.CategoryConfiguration, "duplicate_attribute", def.ID.String(),
				fmt.Sprintf("attribute %q specified more than once in %s attributes", key, analyze.VariantMarker),
				"declare each attribute at most once")

			continue
		}

		seen[key] = true

		if key != "of" {
			d.AddError(diagnostic.CategoryConfiguration, "unknown_attribute", def.ID.String(),
				fmt.Sprintf("unknown option %q in %s attributes", key, analyze.VariantMarker),
				"variants accept only of=<Union>")
		}
	}
}

// parseFieldTag parses the comma-separated options of one netabase field tag.
func parseFieldTag(construct, tag string, d *diagnostic.Diagnostics) FieldAttrs {
	var attrs FieldAttrs

	if tag == "" {
		return attrs
	}

	seen := map[string]bool{}

	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}

		key, value, _ := strings.Cut(opt, "=")

		if seen[key] {
			d.AddError(diagnostic.CategoryConfiguration, "duplicate_attribute", construct,
				fmt.Sprintf("option %q specified more than once in the %s tag", key, FieldTagKey),
				"declare each option at most once")

			continue
		}

		seen[key] = true

		switch key {
		case optIsKey:
			attrs.IsKey = true

		case optKeyTransform:
			if value == "" {
				d.AddError(diagnostic.CategoryConfiguration, "empty_attribute", construct,
					"key_transform has an empty value",
					"name a transform registered in the manifest")

				continue
			}

			attrs.KeyTransform = value

		case optIndex:
			attrs.Index = true

		case optOptional:
			attrs.Optional = true

		default:
			d.AddError(diagnostic.CategoryConfiguration, "unknown_attribute", construct,
				fmt.Sprintf("unknown option %q in the %s tag", key, FieldTagKey),
				unknownOptionRemedy(key, fieldOptions))
		}
	}

	return attrs
}

// tokenize splits directive text on whitespace, keeping double-quoted values
// together.
func tokenize(s string) []string {
	var (
		out      []string
		current  strings.Builder
		inQuotes bool
	)

	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes

			current.WriteRune(r)
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)
		}
	}

	flush()

	return out
}

// unquote strips a matched pair of double quotes from a value.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}

	return s
}
