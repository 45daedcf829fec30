package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/diagnostic"
)

func defWith(directive string, fields ...analyze.FieldDef) *analyze.SchemaDef {
	return &analyze.SchemaDef{
		ID:        analyze.TypeID{PkgPath: "example/store", Name: "User"},
		Kind:      analyze.KindStruct,
		Directive: directive,
		PkgName:   "store",
		Fields:    fields,
	}
}

func TestParse_ContainerAttributes(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	m := Parse(defWith(`prefix=user version=2 separator="//" serde_compat`), d)

	require.False(t, d.HasErrors())
	assert.Equal(t, "user", m.Container.Prefix)
	assert.Equal(t, "2", m.Container.Version)
	assert.Equal(t, "//", m.Container.Separator)
	assert.True(t, m.Container.SerdeCompat)
}

func TestParse_SeparatorDefaults(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	m := Parse(defWith("prefix=user"), d)

	require.False(t, d.HasErrors())
	assert.Equal(t, DefaultSeparator, m.Container.Separator)
}

func TestParse_DuplicateAttribute(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	m := Parse(defWith("prefix=a separator=- separator=_"), d)

	// Exactly one configuration error; the first value stands.
	require.Len(t, d.Errors, 1)
	assert.Equal(t, diagnostic.CategoryConfiguration, d.Errors[0].Category)
	assert.Equal(t, "duplicate_attribute", d.Errors[0].Code)
	assert.Equal(t, "-", m.Container.Separator)
}

func TestParse_EmptySeparator(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	m := Parse(defWith(`separator=""`), d)

	require.Len(t, d.Errors, 1)
	assert.Equal(t, "empty_separator", d.Errors[0].Code)
	// The default survives so later checks still see a usable model.
	assert.Equal(t, DefaultSeparator, m.Container.Separator)
}

func TestParse_SerdeCompatForms(t *testing.T) {
	tests := []struct {
		directive string
		want      bool
		wantErr   bool
	}{
		{"serde_compat", true, false},
		{"serde_compat=true", true, false},
		{"serde_compat=false", false, false},
		{"serde_compat=maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.directive, func(t *testing.T) {
			d := &diagnostic.Diagnostics{}
			m := Parse(defWith(tt.directive), d)

			assert.Equal(t, tt.wantErr, d.HasErrors())
			assert.Equal(t, tt.want, m.Container.SerdeCompat)
		})
	}
}

func TestParse_UnknownAttributeSuggests(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	Parse(defWith("prefex=user"), d)

	require.Len(t, d.Errors, 1)
	assert.Equal(t, "unknown_attribute", d.Errors[0].Code)
	assert.Contains(t, d.Errors[0].Remedy, `did you mean "prefix"`)
}

func TestParse_FieldTag(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	m := Parse(defWith("prefix=user",
		analyze.FieldDef{Name: "ID", Tag: reflect.StructTag(`netabase:"is_key,key_transform=shorten"`)},
		analyze.FieldDef{Name: "Email", Tag: reflect.StructTag(`netabase:"index"`)},
		analyze.FieldDef{Name: "Bio", Tag: reflect.StructTag(`netabase:"optional"`)},
		analyze.FieldDef{Name: "Plain"},
	), d)

	require.False(t, d.HasErrors())
	require.Len(t, m.Fields, 4)

	assert.True(t, m.Fields[0].Attrs.IsKey)
	assert.Equal(t, "shorten", m.Fields[0].Attrs.KeyTransform)
	assert.True(t, m.Fields[1].Attrs.Index)
	assert.True(t, m.Fields[2].Attrs.Optional)
	assert.Equal(t, FieldAttrs{}, m.Fields[3].Attrs)
}

func TestParse_FieldTagUnknownOptionSuggests(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	Parse(defWith("prefix=user",
		analyze.FieldDef{Name: "ID", Tag: reflect.StructTag(`netabase:"iskey"`)},
	), d)

	require.Len(t, d.Errors, 1)
	assert.Equal(t, "unknown_attribute", d.Errors[0].Code)
	assert.Contains(t, d.Errors[0].Construct, "User.ID")
	assert.Contains(t, d.Errors[0].Remedy, `did you mean "is_key"`)
}

func TestParse_VariantsShareContainer(t *testing.T) {
	variant := &analyze.SchemaDef{
		ID:        analyze.TypeID{PkgPath: "example/store", Name: "Created"},
		Kind:      analyze.KindVariant,
		Directive: "of=Event",
		Fields: []analyze.FieldDef{
			{Name: "ID", Tag: reflect.StructTag(`netabase:"is_key"`)},
		},
	}
	union := &analyze.SchemaDef{
		ID:        analyze.TypeID{PkgPath: "example/store", Name: "Event"},
		Kind:      analyze.KindUnion,
		Directive: "prefix=event separator=/",
		Variants:  []*analyze.SchemaDef{variant},
	}

	d := &diagnostic.Diagnostics{}
	m := Parse(union, d)

	require.False(t, d.HasErrors())
	require.Len(t, m.Variants, 1)
	assert.Equal(t, "event", m.Variants[0].Container.Prefix)
	assert.Equal(t, "/", m.Variants[0].Container.Separator)
	assert.True(t, m.Variants[0].Fields[0].Attrs.IsKey)
}

func TestParse_VariantDirectiveRejectsExtras(t *testing.T) {
	variant := &analyze.SchemaDef{
		ID:        analyze.TypeID{PkgPath: "example/store", Name: "Created"},
		Kind:      analyze.KindVariant,
		Directive: "of=Event prefix=nope",
	}

	d := &diagnostic.Diagnostics{}
	Parse(variant, d)

	require.Len(t, d.Errors, 1)
	assert.Equal(t, "unknown_attribute", d.Errors[0].Code)
}

func TestTokenize_QuotedValues(t *testing.T) {
	toks := tokenize(`prefix=user separator="a b" version=1`)

	assert.Equal(t, []string{"prefix=user", `separator="a b"`, "version=1"}, toks)
}
