// Package gen emits the generated artifact set for each resolved plan: the
// nominal key type with its full behavior surface, the schema type's key
// accessor and codec behavior, and the conversions to and from the
// distributed record representation.
//
// Generation uses text/template + go/format for readable output. Emitted
// files land next to the annotated source (same package), one file per
// annotated type. Nothing is emitted for a plan that resolved with errors;
// there is no partial output.
package gen
