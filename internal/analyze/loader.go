package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Directive markers recognized on type declarations.
const (
	SchemaMarker  = "netabase:schema"
	VariantMarker = "netabase:variant"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader discovers annotated schema definitions in Go packages.
type Loader struct {
	defs []*SchemaDef
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPackages loads the given package patterns and returns every annotated
// definition found, with union variants linked to their unions. Variants are
// returned only through their union's Variants list.
func (l *Loader) LoadPackages(patterns ...string) ([]*SchemaDef, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := l.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	if err := l.linkVariants(); err != nil {
		return nil, err
	}

	return l.topLevel(), nil
}

// processPackage scans a package's syntax for annotated type declarations.
func (l *Loader) processPackage(pkg *packages.Package) error {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := typeSpec.Doc
				if doc == nil {
					doc = genDecl.Doc
				}

				def, err := l.buildDef(pkg, typeSpec, doc)
				if err != nil {
					return err
				}

				if def != nil {
					l.defs = append(l.defs, def)
				}
			}
		}
	}

	return nil
}

// buildDef builds a SchemaDef for an annotated type spec, or returns nil when
// the declaration carries no directive.
func (l *Loader) buildDef(pkg *packages.Package, typeSpec *ast.TypeSpec, doc *ast.CommentGroup) (*SchemaDef, error) {
	name := typeSpec.Name.Name
	id := TypeID{PkgPath: pkg.PkgPath, Name: name}

	schemaArgs, isSchema := directiveArgs(doc, SchemaMarker)
	variantArgs, isVariant := directiveArgs(doc, VariantMarker)

	if !isSchema && !isVariant {
		return nil, nil
	}

	if isSchema && isVariant {
		return nil, fmt.Errorf("type %s carries both %s and %s directives", id, SchemaMarker, VariantMarker)
	}

	obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %s not found in package scope", id)
	}

	named, _ := obj.Type().(*types.Named)
	if named == nil {
		return nil, fmt.Errorf("type %s is not a named type", id)
	}

	def := &SchemaDef{
		ID:      id,
		PkgName: pkg.Name,
		Dir:     filepath.Dir(pkg.Fset.Position(typeSpec.Pos()).Filename),
		goType:  named,
	}

	switch underlying := named.Underlying().(type) {
	case *types.Struct:
		if isVariant {
			def.Kind = KindVariant
			def.Directive = variantArgs
			def.UnionName = variantTarget(variantArgs)
		} else {
			def.Kind = KindStruct
			def.Directive = schemaArgs
		}

		l.extractFields(pkg, underlying, def)

	case *types.Interface:
		if isVariant {
			return nil, fmt.Errorf("type %s: %s must be on a struct", id, VariantMarker)
		}

		def.Kind = KindUnion
		def.Directive = schemaArgs

	default:
		return nil, fmt.Errorf("type %s: directives apply to struct and interface types only", id)
	}

	l.extractTypeParams(pkg, named, def)

	return def, nil
}

// extractFields records the struct fields in declaration order.
func (l *Loader) extractFields(pkg *packages.Package, st *types.Struct, def *SchemaDef) {
	qual := relativeQualifier(pkg.Types)

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		def.Fields = append(def.Fields, FieldDef{
			Name:     field.Name(),
			TypeExpr: types.TypeString(field.Type(), qual),
			Tag:      reflect.StructTag(st.Tag(i)),
			Render:   RenderOf(field.Type()),
			GoType:   field.Type(),
			Index:    i,
		})
	}
}

// extractTypeParams records the declared generic parameters.
func (l *Loader) extractTypeParams(pkg *packages.Package, named *types.Named, def *SchemaDef) {
	params := named.TypeParams()
	if params == nil {
		return
	}

	qual := relativeQualifier(pkg.Types)

	for i := 0; i < params.Len(); i++ {
		tp := params.At(i)
		constraint := tp.Constraint()

		seen := map[string]bool{}
		collectPkgPaths(constraint, pkg.Types, seen)

		imports := make([]string, 0, len(seen))
		for p := range seen {
			imports = append(imports, p)
		}

		def.TypeParams = append(def.TypeParams, TypeParam{
			Name:              tp.Obj().Name(),
			Constraint:        types.TypeString(constraint, qual),
			ConstraintImports: imports,
			Displayable:       constraintHasStringMethod(tp),
		})
	}
}

// linkVariants attaches variant definitions to their unions and verifies the
// struct actually satisfies the union interface.
func (l *Loader) linkVariants() error {
	unions := map[TypeID]*SchemaDef{}

	for _, def := range l.defs {
		if def.Kind == KindUnion {
			unions[def.ID] = def
		}
	}

	for _, def := range l.defs {
		if def.Kind != KindVariant {
			continue
		}

		if def.UnionName == "" {
			return fmt.Errorf("variant %s: %s directive needs of=<Union>", def.ID, VariantMarker)
		}

		unionID := TypeID{PkgPath: def.ID.PkgPath, Name: def.UnionName}

		union, ok := unions[unionID]
		if !ok {
			return fmt.Errorf("variant %s: union %s not found or not annotated with %s",
				def.ID, unionID, SchemaMarker)
		}

		def.ImplementsUnion = implementsUnion(def, union)
		union.Variants = append(union.Variants, def)
	}

	return nil
}

// implementsUnion checks whether the variant type (or a pointer to it)
// satisfies the union interface. Hand-built definitions without go/types
// backing are assumed conformant.
func implementsUnion(variant, union *SchemaDef) bool {
	if variant.goType == nil || union.goType == nil {
		return true
	}

	iface, ok := union.goType.Underlying().(*types.Interface)
	if !ok {
		return true
	}

	return types.Implements(variant.goType, iface) ||
		types.Implements(types.NewPointer(variant.goType), iface)
}

// topLevel returns every definition except variants, which are reachable
// through their union.
func (l *Loader) topLevel() []*SchemaDef {
	var out []*SchemaDef

	for _, def := range l.defs {
		if def.Kind != KindVariant {
			out = append(out, def)
		}
	}

	return out
}

// directiveArgs scans a comment group for a directive line and returns the
// text following the marker.
func directiveArgs(doc *ast.CommentGroup, marker string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if text == marker {
			return "", true
		}

		if strings.HasPrefix(text, marker+" ") {
			return strings.TrimSpace(strings.TrimPrefix(text, marker+" ")), true
		}
	}

	return "", false
}

// variantTarget extracts the of=<Union> argument from a variant directive.
func variantTarget(args string) string {
	for _, tok := range strings.Fields(args) {
		if strings.HasPrefix(tok, "of=") {
			return strings.TrimPrefix(tok, "of=")
		}
	}

	return ""
}

// relativeQualifier renders types relative to self: same-package types print
// bare, foreign types print with their package name.
func relativeQualifier(self *types.Package) types.Qualifier {
	return func(p *types.Package) string {
		if p == self {
			return ""
		}

		return p.Name()
	}
}

// collectPkgPaths gathers the import paths of named types referenced by t,
// skipping self.
func collectPkgPaths(t types.Type, self *types.Package, seen map[string]bool) {
	switch tt := t.(type) {
	case *types.Named:
		if p := tt.Obj().Pkg(); p != nil && p != self {
			seen[p.Path()] = true
		}

		if args := tt.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				collectPkgPaths(args.At(i), self, seen)
			}
		}

	case *types.Interface:
		for i := 0; i < tt.NumEmbeddeds(); i++ {
			collectPkgPaths(tt.EmbeddedType(i), self, seen)
		}

	case *types.Union:
		for i := 0; i < tt.Len(); i++ {
			collectPkgPaths(tt.Term(i).Type(), self, seen)
		}
	}
}
