// Package cli provides the command-line interface for Folio.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/folio/internal/app"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts the browser.
func NewRootCmd() *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Folio - LocalLibrary catalog browser",
		Long: `Folio is a terminal browser for a LocalLibrary catalog service.

It shows the library menu, routes paths to views, and loads the book list
from the catalog API.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: ~/.config/folio/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file with FOLIO_* variables")
	rootCmd.PersistentFlags().StringVar(&opts.CatalogURL, "catalog-url", "", "catalog service URL (overrides config)")
	rootCmd.Flags().StringVar(&opts.StartPath, "start", "", "path to open first, e.g. /books")
	rootCmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default: ~/.config/folio/prefs.toml)")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newRoutesCommand())
	rootCmd.AddCommand(newBooksCommand(&opts))

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "folio v%s (%s)\n", Version, GitCommit)
		},
	}
}
