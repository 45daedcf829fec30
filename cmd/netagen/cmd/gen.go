package cmd

import (
	"github.com/spf13/cobra"

	"github.com/newsnet-africa/netabase-sub001/internal/gen"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

// genCmd represents the gen command.
var genCmd = &cobra.Command{
	Use:   "gen [packages...]",
	Short: "Generate schema artifacts",
	Long: `Generate key types and codec surfaces for every annotated type in the
given packages. Patterns default to ./... and follow go/packages syntax.
Generated files land next to the annotated source.

Example:
  netagen gen ./...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		manifestPath, _ := cmd.Flags().GetString("manifest")
		manifestSet := cmd.Flags().Changed("manifest")

		mf, reg, err := loadManifest(manifestPath, manifestSet)
		if err != nil {
			return err
		}

		plans, diags, err := buildPlans(logger, reg, args)
		if err != nil {
			return err
		}

		if err := reportDiagnostics(diags); err != nil {
			return err
		}

		suffix := mf.Output.Suffix
		if suffix == "" {
			suffix = schema.DefaultOutputSuffix
		}

		generator := gen.NewGenerator(gen.Config{Suffix: suffix})

		files, err := generator.Generate(plans)
		if err != nil {
			return err
		}

		if err := gen.WriteFiles(files); err != nil {
			return err
		}

		for _, f := range files {
			logger.Info().Str("dir", f.Dir).Str("file", f.Filename).Msg("wrote artifact")
		}

		logger.Info().Int("schemas", len(files)).Msg("generation complete")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
}
