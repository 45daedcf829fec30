package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "netagen",
	Short: "netagen - schema codegen for the netabase store",
	Long: `netagen scans Go packages for netabase:schema directives, validates
the annotation set, and generates each schema's key type and codec
surface next to the annotated source.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("manifest", "m", "netabase.yaml", "Path to the generator manifest")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the command logger honoring the verbose flag.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	return logger
}
