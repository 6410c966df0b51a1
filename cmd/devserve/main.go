package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/devserve/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "devserve",
	Short:   "Development HTTP server for single page applications",
	Long: `Devserve is a local development HTTP server that serves static
frontend assets from a content root and falls back to the entry document
for unknown routes, so client-side routing works without a production
web server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			files = []string{configFile}
		}

		cfg, err := config.Load(files, cmd.Flags())
		if err != nil {
			return err
		}

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		setupLogging(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
