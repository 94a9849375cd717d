package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/printsmith-digest/internal/usecases/authenticating"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Gera um token de operador para a API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg.Auth).GenerateToken(tokenSubject)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "Identificação do operador no token")
}
