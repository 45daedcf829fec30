package gen

import (
	"fmt"
	"strings"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/common"
	"github.com/newsnet-africa/netabase-sub001/internal/plan"
)

// fileData holds everything the artifact template needs for one type.
type fileData struct {
	PackageName string
	Filename    string
	Imports     []importSpec

	TypeName string
	KeyType  string

	// ParamsDecl is the full type parameter list for declarations, e.g.
	// "[T fmt.Stringer]"; ParamsUse is the instantiation form "[T]". Both
	// are empty for non-generic types.
	ParamsDecl string
	ParamsUse  string

	// KeyExpr is the expression producing the key text of a struct
	// schema. Unused for unions.
	KeyExpr string
	// ItemKeyExpr is the whole-instance expression of a union-level item
	// closure. Unused otherwise.
	ItemKeyExpr string

	ModeExpr     string
	PrimaryName  string
	FallbackName string

	IndexEntries []indexEntry
	Version      string

	Union *unionData
}

// indexEntry is one secondary-index emission.
type indexEntry struct {
	Name string
	Expr string
}

// unionData describes the variant surface of a union schema.
type unionData struct {
	// EnvType is the unexported envelope type framing variants.
	EnvType string
	// Variants lists every variant for the encode/decode dispatch.
	Variants []variantData
	// KeyMethods lists the variants that get their own Key method; empty
	// when an item closure keys the whole union.
	KeyMethods []variantData
}

// variantData is one union variant in the template.
type variantData struct {
	TypeName string
	KeyExpr  string
}

// buildFileData assembles template data from a resolved plan.
func (g *Generator) buildFileData(p *plan.Plan) (*fileData, error) {
	def := p.Model.Def
	imports := map[string]importSpec{}

	addImport(imports, kvImport, "")
	addImport(imports, codecImport, "")
	addImport(imports, recordImport, "")

	data := &fileData{
		PackageName: def.PkgName,
		Filename:    common.SnakeCase(def.ID.Name) + g.config.Suffix,
		TypeName:    def.ID.Name,
		KeyType:     def.ID.Name + "Key",
		Version:     p.Model.Container.Version,
	}

	if p.Serialization.Compat {
		data.ModeExpr = "codec.ModeCompat"
		data.PrimaryName = "json"
		data.FallbackName = "cbor"
	} else {
		data.ModeExpr = "codec.ModeNative"
		data.PrimaryName = "cbor"
		data.FallbackName = "json"
	}

	g.buildTypeParams(def, data, imports)

	switch def.Kind {
	case analyze.KindUnion:
		if def.Generic() {
			return nil, fmt.Errorf("union %s: generic unions are not supported", def.ID)
		}

		g.buildUnion(p, data, imports)

	default:
		g.buildStruct(p, data, imports)
	}

	data.Imports = sortedImports(imports)

	return data, nil
}

// buildTypeParams renders the declaration and instantiation forms of the
// type parameter list and pulls in constraint imports.
func (g *Generator) buildTypeParams(def *analyze.SchemaDef, data *fileData, imports map[string]importSpec) {
	if !def.Generic() {
		return
	}

	decl := make([]string, 0, len(def.TypeParams))
	use := make([]string, 0, len(def.TypeParams))

	for _, tp := range def.TypeParams {
		decl = append(decl, tp.Name+" "+tp.Constraint)
		use = append(use, tp.Name)

		for _, path := range tp.ConstraintImports {
			addImport(imports, path, "")
		}
	}

	data.ParamsDecl = "[" + strings.Join(decl, ", ") + "]"
	data.ParamsUse = "[" + strings.Join(use, ", ") + "]"
}

// buildStruct fills the struct-specific template data.
func (g *Generator) buildStruct(p *plan.Plan, data *fileData, imports map[string]importSpec) {
	if p.Key.Strategy == plan.StrategyItemClosure {
		data.KeyExpr = g.composeExpr(p.Key, []string{callExpr(p.Key.ItemTransform, "v", imports)}, imports)
	} else {
		data.KeyExpr = g.keyExpr(p.Key, "v", imports)
	}

	for _, fm := range p.Model.IndexFields() {
		if !fm.Field.Render.Displayable() {
			continue
		}

		data.IndexEntries = append(data.IndexEntries, indexEntry{
			Name: fm.Field.Name,
			Expr: renderExpr(fm.Field, "v", imports),
		})
	}
}

// buildUnion fills the union-specific template data.
func (g *Generator) buildUnion(p *plan.Plan, data *fileData, imports map[string]importSpec) {
	addImport(imports, "fmt", "")

	union := &unionData{
		EnvType: envelopeName(data.TypeName),
	}

	for _, vm := range p.Model.Variants {
		union.Variants = append(union.Variants, variantData{TypeName: vm.Def.ID.Name})
	}

	if p.Key.Strategy == plan.StrategyItemClosure {
		data.ItemKeyExpr = g.composeExpr(p.Key, []string{callExpr(p.Key.ItemTransform, "v", imports)}, imports)
	} else {
		for _, vks := range p.Key.Variants {
			union.KeyMethods = append(union.KeyMethods, variantData{
				TypeName: vks.Model.Def.ID.Name,
				KeyExpr:  g.keyExpr(vks.Spec, "v", imports),
			})
		}
	}

	data.Union = union
}

// envelopeName derives the unexported envelope type name for a union.
func envelopeName(typeName string) string {
	return strings.ToLower(typeName[:1]) + typeName[1:] + "Envelope"
}
