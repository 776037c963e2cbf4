package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "AI-powered single-file website generation",
	Long: `Sitegen turns a plain-language description into a complete, self-contained
HTML website using an AI model. It ships a local web UI with a sandboxed
live preview, a one-shot CLI mode, and an MCP server for AI agent
integration.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".sitegen.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
