package schema

import (
	"fmt"

	"github.com/newsnet-africa/netabase-sub001/internal/common"
)

// TransformDef declares one named transform function available to
// key_transform and item_key_closure attributes. The referenced Go function
// must map a value of SourceType to a string.
type TransformDef struct {
	// Name is the identifier attributes reference.
	Name string `yaml:"name"`
	// Import is the package import path providing the function. Empty for
	// functions in the annotated package itself.
	Import string `yaml:"import,omitempty"`
	// Package overrides the import alias. Defaults to the path base.
	Package string `yaml:"package,omitempty"`
	// Func is the function name. Defaults to Name.
	Func string `yaml:"func,omitempty"`
	// SourceType restricts which declared type the transform accepts,
	// rendered the way the field type appears in source (e.g. "uint64",
	// "time.Time", or a schema type name for item closures). Empty accepts
	// any type.
	SourceType string `yaml:"source_type,omitempty"`
	// Description documents the transform.
	Description string `yaml:"description,omitempty"`
}

// Alias returns the package alias used in generated call sites.
func (t *TransformDef) Alias() string {
	if t.Import == "" {
		return ""
	}

	if t.Package != "" {
		return t.Package
	}

	return common.PkgAlias(t.Import)
}

// FuncCall returns the qualified call expression for the transform.
func (t *TransformDef) FuncCall() string {
	if alias := t.Alias(); alias != "" {
		return alias + "." + t.Func
	}

	return t.Func
}

// Accepts reports whether the transform's declared signature covers the
// given source type expression.
func (t *TransformDef) Accepts(typeExpr string) bool {
	return t.SourceType == "" || t.SourceType == typeExpr
}

// Registry resolves transform names declared in the manifest.
type Registry struct {
	transforms map[string]*TransformDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{transforms: make(map[string]*TransformDef)}
}

// BuildRegistry builds a registry from manifest declarations, rejecting
// duplicate names and declarations without a name.
func BuildRegistry(defs []TransformDef) (*Registry, []error) {
	registry := NewRegistry()

	var errs []error

	for i := range defs {
		def := &defs[i]

		if def.Name == "" {
			errs = append(errs, fmt.Errorf("transform #%d: missing name", i+1))

			continue
		}

		if registry.Has(def.Name) {
			errs = append(errs, fmt.Errorf("duplicate transform %q", def.Name))

			continue
		}

		registry.Add(def)
	}

	return registry, errs
}

// Add adds a transform to the registry, replacing any previous definition.
func (r *Registry) Add(def *TransformDef) {
	if def.Func == "" {
		def.Func = def.Name
	}

	r.transforms[def.Name] = def
}

// Get returns a transform by name, or nil if not found.
func (r *Registry) Get(name string) *TransformDef {
	return r.transforms[name]
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, exists := r.transforms[name]

	return exists
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	return common.SortedKeys(r.transforms)
}
