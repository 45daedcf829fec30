package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check [packages...]",
	Short: "Validate annotations without generating",
	Long: `Run discovery, parsing, and key resolution over the given packages and
report every diagnostic, writing nothing. Exits non-zero when any schema
fails to resolve.

Example:
  netagen check ./...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		manifestPath, _ := cmd.Flags().GetString("manifest")
		manifestSet := cmd.Flags().Changed("manifest")

		_, reg, err := loadManifest(manifestPath, manifestSet)
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

		logger.Info().Int("schemas", len(plans)).Msg("all schemas resolve")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
