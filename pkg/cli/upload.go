package cli

import (
	"time"

	"github.com/mimeset/mimeset/pkg/config"
	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/pipeline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Resolve content types and publish files",
	Long: `Run the full pipeline: validate the configuration, resolve each file's
content type, compute checksums, then store the files in S3 and attach them
to a GitHub release when those destinations are configured.
GitHub authentication uses release.github.token or the GITHUB_TOKEN environment variable.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runUpload,
}

// runUpload executes the upload command
func runUpload(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	start := time.Now()

	cfg, err := config.LoadConfig(GetConfigPath())
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	ctx := mimeCtx.NewContext(commandContext(cmd), cfg, logger)
	if err := applyFileFlags(cmd, args, ctx); err != nil {
		ExitWithErrorf(logger, "Invalid file: %v", err)
	}
	ctx.SkipPublish, _ = cmd.Flags().GetBool("skip-publish")

	if err := pipeline.RunAll(ctx); err != nil {
		ExitWithErrorf(logger, "Upload failed after %s: %v", formatDuration(time.Since(start)), err)
	}

	for _, p := range ctx.Published {
		logger.WithFields(logrus.Fields{
			"file":        p.File,
			"destination": p.Destination,
		}).Info(p.Location)
	}

	logger.Infof("Upload succeeded after %s", formatDuration(time.Since(start)))
}
