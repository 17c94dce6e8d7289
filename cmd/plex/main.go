package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "plex",
		Short: "A tiny parser-combinator toolbox",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newJSONCmd())
	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
