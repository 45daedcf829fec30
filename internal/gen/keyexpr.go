package gen

import (
	"fmt"
	"strings"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/plan"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// keyExpr renders the Go expression producing a struct's key text. The
// resolver guarantees the KeySpec uses a field-backed strategy by the time
// emission runs.
func (g *Generator) keyExpr(spec plan.KeySpec, recv string, imports map[string]importSpec) string {
	parts := make([]string, 0, len(spec.Parts))

	for _, part := range spec.Parts {
		if part.Transform != nil {
			parts = append(parts, callExpr(part.Transform, recv+"."+part.Field.Name, imports))

			continue
		}

		parts = append(parts, renderExpr(part.Field, recv, imports))
	}

	return g.composeExpr(spec, parts, imports)
}

// composeExpr joins rendered parts under the configured prefix and separator.
// A lone part without a prefix stays a direct expression.
func (g *Generator) composeExpr(spec plan.KeySpec, parts []string, imports map[string]importSpec) string {
	if spec.Prefix == "" && len(parts) == 1 {
		return parts[0]
	}

	addImport(imports, kvImport, "")

	return fmt.Sprintf("kv.Compose(%q, %q, %s)", spec.Prefix, spec.Separator, strings.Join(parts, ", "))
}

// renderExpr produces the canonical string form of one displayable field.
func renderExpr(field *analyze.FieldDef, recv string, imports map[string]importSpec) string {
	access := recv + "." + field.Name

	switch field.Render {
	case analyze.RenderString:
		if field.TypeExpr == "string" {
			return access
		}

		return "string(" + access + ")"

	case analyze.RenderInt:
		addImport(imports, "strconv", "")

		if field.TypeExpr != "int64" {
			access = "int64(" + access + ")"
		}

		return "strconv.FormatInt(" + access + ", 10)"

	case analyze.RenderUint:
		addImport(imports, "strconv", "")

		if field.TypeExpr != "uint64" {
			access = "uint64(" + access + ")"
		}

		return "strconv.FormatUint(" + access + ", 10)"

	case analyze.RenderBool:
		addImport(imports, "strconv", "")

		if field.TypeExpr != "bool" {
			access = "bool(" + access + ")"
		}

		return "strconv.FormatBool(" + access + ")"

	case analyze.RenderStringer:
		return access + ".String()"

	default:
		// Validation rejects non-displayable key fields before emission.
		return access
	}
}

// callExpr renders a transform call site and records its import.
func callExpr(t *schema.TransformDef, arg string, imports map[string]importSpec) string {
	if t.Import != "" {
		addImport(imports, t.Import, t.Package)
	}

	return t.FuncCall() + "(" + arg + ")"
}
