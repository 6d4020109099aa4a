package cli

import (
	"fmt"
	"io"

	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/pipeline"
	"github.com/mimeset/mimeset/pkg/upload"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve FILE...",
	Short: "Print the content type of each file",
	Long: `Resolve and print the content type each file would be uploaded with,
one "FILE<TAB>TYPE" line per file. An empty TYPE means no type could be found.
The configuration file is optional; without it the built-in tables are used.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runResolve,
}

// runResolve executes the resolve command
func runResolve(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	cfg, found, err := config.LoadOrDefault(GetConfigPath())
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}
	if !found {
		logger.Debugf("No configuration at %s, using defaults", GetConfigPath())
	}

	ctx := mimeCtx.NewContext(commandContext(cmd), cfg, logger)
	if err := applyFileFlags(cmd, args, ctx); err != nil {
		ExitWithErrorf(logger, "Invalid file: %v", err)
	}

	if err := pipeline.RunResolve(ctx); err != nil {
		ExitWithErrorf(logger, "Resolve failed: %v", err)
	}

	writeResolved(cmd.OutOrStdout(), args, ctx.Files)
}

// writeResolved prints one line per file using the path as given
func writeResolved(w io.Writer, args []string, files []*upload.LocalFile) {
	for i, f := range files {
		fmt.Fprintf(w, "%s\t%s\n", args[i], f.ContentType())
	}
}
