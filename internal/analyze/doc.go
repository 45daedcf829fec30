// Package analyze provides package loading and schema discovery.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find type
// declarations carrying the //netabase:schema directive, extract their fields
// and type parameters, classify how each field renders to canonical key text,
// and link union variants (//netabase:variant of=X) to their union interface.
//
// Key types:
//   - TypeID: package import path + type name
//   - SchemaDef: one annotated definition (struct or union)
//   - FieldDef: field name, rendered type, tag, canonical-string capability
package analyze
