package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/diagnostic"
	"github.com/newsnet-africa/netabase-sub001/internal/plan"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// errDiagnostics signals that resolution failed with reported diagnostics
// rather than an infrastructure error.
var errDiagnostics = errors.New("schema diagnostics reported")

// loadManifest reads the manifest at path and builds the transform registry.
// A missing manifest file is not an error when the path is the default: the
// pipeline then runs with an empty registry.
func loadManifest(path string, required bool) (*schema.Manifest, *schema.Registry, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			mf := &schema.Manifest{}
			reg, _ := schema.BuildRegistry(nil)

			return mf, reg, nil
		}

		return nil, nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	mf, err := schema.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	reg, errs := schema.BuildRegistry(mf.Transforms)
	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("manifest %s: %w", path, errors.Join(errs...))
	}

	return mf, reg, nil
}

// buildPlans loads the annotated packages and resolves a plan per schema.
// Diagnostics from all schemas are aggregated; a schema that resolves with
// errors contributes no plan.
func buildPlans(logger zerolog.Logger, reg *schema.Registry, patterns []string) ([]*plan.Plan, *diagnostic.Diagnostics, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	loader := analyze.NewLoader()

	defs, err := loader.LoadPackages(patterns...)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug().Int("schemas", len(defs)).Msg("discovered annotated types")

	all := &diagnostic.Diagnostics{}
	plans := make([]*plan.Plan, 0, len(defs))

	for _, def := range defs {
		d := &diagnostic.Diagnostics{}
		model := schema.Parse(def, d)

		p, resolveDiags := plan.Resolve(model, reg)
		d.Merge(resolveDiags)
		all.Merge(d)

		// Parse errors block emission the same way resolution errors do.
		if p == nil || d.HasErrors() {
			logger.Debug().Str("schema", def.ID.String()).Msg("resolution failed, no artifact emitted")

			continue
		}

		logger.Debug().
			Str("schema", def.ID.String()).
			Str("strategy", p.Key.Strategy.String()).
			Msg("resolved key plan")

		plans = append(plans, p)
	}

	return plans, all, nil
}

// reportDiagnostics prints aggregated diagnostics and returns errDiagnostics
// when any are fatal.
func reportDiagnostics(d *diagnostic.Diagnostics) error {
	for _, w := range d.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}

	for _, e := range d.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e.String())
	}

	if d.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errDiagnostics, len(d.Errors))
	}

	return nil
}
