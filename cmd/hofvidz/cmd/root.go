// Package cmd implements the hofvidz server commands.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hofvidz",
	Short: "Curate halls of YouTube videos",
	Long: "hofvidz serves halls of fame for YouTube videos: a JSON API and web pages\n" +
		"for searching YouTube, adding videos to halls and browsing them.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
