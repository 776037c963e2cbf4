package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sitegen-ai/sitegen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize sitegen configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure sitegen and generates a .sitegen.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
