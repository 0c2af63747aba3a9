package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flip-advisor",
		Short:         "Evaluate house flip deals: profit, ROI, 70% rule and a deal score",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("config", "configs/config.yaml", "path to the YAML config file (env CONFIG_PATH)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newCalcCommand())
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func configPath(cmd *cobra.Command) string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	path, _ := cmd.Flags().GetString("config")
	return path
}
