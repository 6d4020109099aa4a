package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mimeset/mimeset/pkg/config"
	"github.com/mimeset/mimeset/pkg/version"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "mimeset",
	Short:   "Content type resolution for uploaded files",
	Version: version.VersionInfo(),
	Long: `mimeset assigns MIME content types to files before they are uploaded.
A declared type is kept unless it is missing, generic (application/octet-stream,
binary/octet-stream) or --override is given; otherwise the type is looked up
from the file name. Files can then be stored in S3 or attached to a GitHub release.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying help: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	registerCommands()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Ctrl-C cancels in-flight uploads
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// registerCommands initializes flags and registers all subcommands
func registerCommands() {
	// Set up persistent flags
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug mode")

	// Add all subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(uploadCmd)

	// --content-type and --override are shared by resolve and upload
	addFileFlags(resolveCmd)
	addFileFlags(uploadCmd)

	uploadCmd.Flags().Bool("skip-publish", false, "resolve and hash files without storing or releasing them")
}

// addFileFlags registers the flags read by applyFileFlags
func addFileFlags(cmd *cobra.Command) {
	cmd.Flags().String("content-type", "", "declared content type of the files")
	cmd.Flags().Bool("override", false, "resolve the content type even when a specific one is declared")
}

// GetConfigPath returns the config file path from flags
func GetConfigPath() string {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	return configPath
}

// GetDebugMode returns debug mode flag value
func GetDebugMode() bool {
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	return debug
}
