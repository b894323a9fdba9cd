package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor is a tool to train binary decision-tree classifiers",
		Long:  `A tool to train binary decision trees from your data, test them, and use them to classify new samples`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&config.logger), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), trainCmd(config), predictCmd(config), testCmd(config), splitCmd(config))
	return rootCmd
}
