package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	mimeCtx "github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/logging"
	"github.com/mimeset/mimeset/pkg/upload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SetupLogger creates and configures a logger based on debug mode
func SetupLogger(debug bool) *logrus.Logger {
	logger := logrus.New()

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logging.BulletFormatter{})
	}

	return logger
}

// ExitWithErrorf logs an error with the provided logger and exits with code 1
func ExitWithErrorf(logger *logrus.Logger, format string, args ...interface{}) {
	logger.Errorf(format, args...)
	os.Exit(1)
}

// formatDuration renders d as 523ms, 45s or 1m32s
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// loadFiles turns command arguments into file descriptors carrying the
// --content-type flag value as their declared type.
func loadFiles(paths []string, declaredType string) ([]*upload.LocalFile, error) {
	files := make([]*upload.LocalFile, 0, len(paths))
	for _, p := range paths {
		f, err := upload.NewLocalFile(p, declaredType)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// applyFileFlags fills ctx.Files and ctx.Override from the command line
func applyFileFlags(cmd *cobra.Command, args []string, ctx *mimeCtx.Context) error {
	declared, _ := cmd.Flags().GetString("content-type")
	override, _ := cmd.Flags().GetBool("override")

	files, err := loadFiles(args, declared)
	if err != nil {
		return err
	}
	ctx.Files = files
	ctx.Override = override
	return nil
}

// commandContext returns a standard context cancelled with the command
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
