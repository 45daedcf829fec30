package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"github.com/newsnet-africa/netabase-sub001/internal/common"
	"github.com/newsnet-africa/netabase-sub001/internal/plan"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// modulePath anchors the runtime packages generated code imports.
const modulePath = "github.com/newsnet-africa/netabase-sub001"

// Runtime import paths.
const (
	kvImport     = modulePath + "/kv"
	codecImport  = modulePath + "/codec"
	recordImport = modulePath + "/record"
)

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the snake_cased type name to form the
	// generated filename.
	Suffix string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Suffix: schema.DefaultOutputSuffix}
}

// Generator generates Go source from resolved plans.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = schema.DefaultOutputSuffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs to (the annotated package's
	// directory).
	Dir string
	// Filename is the bare file name, e.g. "user_netabase.go".
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Generate generates one file per resolved plan.
func (g *Generator) Generate(plans []*plan.Plan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(plans))

	for _, p := range plans {
		file, err := g.GenerateOne(p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Model.Construct(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateOne generates the artifact file for a single plan.
func (g *Generator) GenerateOne(p *plan.Plan) (*GeneratedFile, error) {
	data, err := g.buildFileData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := artifactTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(p.Model.Def.Dir, data.Filename, buf.Bytes())

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      p.Model.Def.Dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// importSpec is one import line of a generated file.
type importSpec struct {
	Alias string
	Path  string
}

// sortedImports converts an import set to a deterministically ordered slice.
func sortedImports(imports map[string]importSpec) []importSpec {
	out := make([]importSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// addImport records an import path, with an optional alias when it differs
// from the path base.
func addImport(imports map[string]importSpec, path, alias string) {
	if path == "" {
		return
	}

	if alias == common.PkgAlias(path) {
		alias = ""
	}

	imports[path] = importSpec{Alias: alias, Path: path}
}
