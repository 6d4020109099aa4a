package cli

import (
	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/pipeline"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration file",
	Long: `Validate the .mimeset.yaml configuration file.
This command checks for syntax errors, required fields, custom content type
rules and the configured destinations.`,
	Run: runCheck,
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := GetConfigPath()

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	logger.Info("Configuration loaded successfully")

	ctx := mimeCtx.NewContext(commandContext(cmd), cfg, logger)

	// Run validation pipeline only
	if err := pipeline.RunValidation(ctx); err != nil {
		ExitWithErrorf(logger, "Configuration validation failed: %v", err)
	}

	logger.Info("Configuration is valid")
}
