package gen

import "text/template"

// artifactTemplate renders the whole generated file for one annotated type.
// go/format normalizes spacing afterwards, so the template only has to get
// the token stream right.
var artifactTemplate = template.Must(template.New("artifact").Parse(artifactText))

const artifactText = `// Code generated by netagen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{- if .Version}}

// {{.TypeName}}SchemaVersion is the declared schema version of {{.TypeName}}.
const {{.TypeName}}SchemaVersion = "{{.Version}}"
{{- end}}

// {{.KeyType}} is the nominal key for {{.TypeName}} records. It is
// comparable and hashable, and cannot be confused with the key of any
// other schema.
type {{.KeyType}} struct {
	kv.Key
}

// New{{.KeyType}} wraps raw key text in a {{.KeyType}}.
func New{{.KeyType}}(s string) {{.KeyType}} {
	return {{.KeyType}}{Key: kv.NewKey(s)}
}

// {{.KeyType}}FromBytes interprets b as UTF-8 key text, rejecting invalid
// byte sequences.
func {{.KeyType}}FromBytes(b []byte) ({{.KeyType}}, error) {
	k, err := kv.KeyFromBytes(b)
	if err != nil {
		return {{.KeyType}}{}, err
	}

	return {{.KeyType}}{Key: k}, nil
}

// NewUnique{{.KeyType}} returns a fresh unique key. Keys produced by the
// same process are strictly increasing.
func NewUnique{{.KeyType}}() {{.KeyType}} {
	return {{.KeyType}}{Key: kv.NewUniqueKey()}
}
{{- if .Union}}
{{- template "union" .}}
{{- else}}
{{- template "struct" .}}
{{- end}}
`

var _ = template.Must(artifactTemplate.New("struct").Parse(structText))

const structText = `

// Key derives the record key of v from its annotated key configuration.
func (v {{.TypeName}}{{.ParamsUse}}) Key() {{.KeyType}} {
	return New{{.KeyType}}({{.KeyExpr}})
}
{{- if .IndexEntries}}

// IndexEntries returns the secondary index values of v, keyed by field name.
func (v {{.TypeName}}{{.ParamsUse}}) IndexEntries() map[string]string {
	return map[string]string{
{{- range .IndexEntries}}
		"{{.Name}}": {{.Expr}},
{{- end}}
	}
}
{{- end}}

// Encode serializes v under the {{.PrimaryName}} codec.
func (v {{.TypeName}}{{.ParamsUse}}) Encode() ([]byte, error) {
	return codec.Encode({{.ModeExpr}}, v)
}

// Decode{{.TypeName}} deserializes data as a {{.TypeName}}, trying
// {{.PrimaryName}} first and falling back to {{.FallbackName}}.
func Decode{{.TypeName}}{{.ParamsDecl}}(data []byte) ({{.TypeName}}{{.ParamsUse}}, error) {
	return codec.DecodeDual[{{.TypeName}}{{.ParamsUse}}]({{.ModeExpr}}, data)
}

// ToRecord converts v to its stored record form.
func (v {{.TypeName}}{{.ParamsUse}}) ToRecord() (record.Record, error) {
	value, err := v.Encode()
	if err != nil {
		return record.Record{}, err
	}

	return record.New(v.Key().Bytes(), value), nil
}

// {{.TypeName}}FromRecord reconstructs a {{.TypeName}} from its stored
// record form.
func {{.TypeName}}FromRecord{{.ParamsDecl}}(r record.Record) ({{.TypeName}}{{.ParamsUse}}, error) {
	return Decode{{.TypeName}}{{.ParamsUse}}(r.Value)
}

// Must{{.TypeName}}FromRecord is {{.TypeName}}FromRecord panicking on error.
func Must{{.TypeName}}FromRecord{{.ParamsDecl}}(r record.Record) {{.TypeName}}{{.ParamsUse}} {
	v, err := {{.TypeName}}FromRecord{{.ParamsUse}}(r)
	if err != nil {
		panic(err)
	}

	return v
}
`

var _ = template.Must(artifactTemplate.New("union").Parse(unionText))

const unionText = `
{{- range .Union.KeyMethods}}

// Key derives the record key of the {{.TypeName}} variant.
func (v {{.TypeName}}) Key() {{$.KeyType}} {
	return New{{$.KeyType}}({{.KeyExpr}})
}
{{- end}}

// KeyOf{{.TypeName}} derives the record key of any {{.TypeName}} variant.
func KeyOf{{.TypeName}}(v {{.TypeName}}) ({{.KeyType}}, error) {
{{- if .ItemKeyExpr}}
	return New{{.KeyType}}({{.ItemKeyExpr}}), nil
{{- else}}
	switch v := v.(type) {
{{- range .Union.KeyMethods}}
	case {{.TypeName}}:
		return v.Key(), nil
{{- end}}
	default:
		return {{.KeyType}}{}, fmt.Errorf("unhandled {{.TypeName}} variant %T", v)
	}
{{- end}}
}

// {{.Union.EnvType}} frames a serialized variant with its discriminator.
type {{.Union.EnvType}} struct {
	Variant string ` + "`json:\"variant\"`" + `
	Data    []byte ` + "`json:\"data\"`" + `
}

// Encode{{.TypeName}} serializes any {{.TypeName}} variant, payload and
// envelope both under the {{.PrimaryName}} codec.
func Encode{{.TypeName}}(v {{.TypeName}}) ([]byte, error) {
	var env {{.Union.EnvType}}

	switch v := v.(type) {
{{- range .Union.Variants}}
	case {{.TypeName}}:
		data, err := codec.Encode({{$.ModeExpr}}, v)
		if err != nil {
			return nil, err
		}

		env = {{$.Union.EnvType}}{Variant: "{{.TypeName}}", Data: data}
{{- end}}
	default:
		return nil, fmt.Errorf("unhandled {{$.TypeName}} variant %T", v)
	}

	return codec.Encode({{.ModeExpr}}, env)
}

// Decode{{.TypeName}} deserializes an envelope and its variant payload,
// trying {{.PrimaryName}} first and falling back to {{.FallbackName}} at
// both layers.
func Decode{{.TypeName}}(data []byte) ({{.TypeName}}, error) {
	env, err := codec.DecodeDual[{{.Union.EnvType}}]({{.ModeExpr}}, data)
	if err != nil {
		return nil, err
	}

	switch env.Variant {
{{- range .Union.Variants}}
	case "{{.TypeName}}":
		return codec.DecodeDual[{{.TypeName}}]({{$.ModeExpr}}, env.Data)
{{- end}}
	default:
		return nil, fmt.Errorf("unknown {{$.TypeName}} variant %q", env.Variant)
	}
}

// {{.TypeName}}ToRecord converts a variant to its stored record form.
func {{.TypeName}}ToRecord(v {{.TypeName}}) (record.Record, error) {
	key, err := KeyOf{{.TypeName}}(v)
	if err != nil {
		return record.Record{}, err
	}

	value, err := Encode{{.TypeName}}(v)
	if err != nil {
		return record.Record{}, err
	}

	return record.New(key.Bytes(), value), nil
}

// {{.TypeName}}FromRecord reconstructs a variant from its stored record
// form.
func {{.TypeName}}FromRecord(r record.Record) ({{.TypeName}}, error) {
	return Decode{{.TypeName}}(r.Value)
}

// Must{{.TypeName}}FromRecord is {{.TypeName}}FromRecord panicking on error.
func Must{{.TypeName}}FromRecord(r record.Record) {{.TypeName}} {
	v, err := {{.TypeName}}FromRecord(r)
	if err != nil {
		panic(err)
	}

	return v
}
`
