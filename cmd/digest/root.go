package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "printsmith-digest",
	Short: "Exporta o digest diário do PrintSmith para a API do Render",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		runCmd,
		serveCmd,
		checkCmd,
		tokenCmd,
	)
}

// Execute roda o comando solicitado e encerra com código 1 em caso de erro
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERRO:", err)
		os.Exit(1)
	}
}
