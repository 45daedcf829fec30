package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [packages...]",
	Short: "Dump discovered schema definitions",
	Long: `Load the given packages and dump every discovered annotated type,
including fields, type parameters, and variant links. Useful when a
directive does not take effect the way you expect.

Example:
  netagen analyze ./...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}

		loader := analyze.NewLoader()

		defs, err := loader.LoadPackages(patterns...)
		if err != nil {
			return err
		}

		logger.Info().Int("schemas", len(defs)).Msg("discovered annotated types")

		for _, def := range defs {
			spew.Dump(def)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
