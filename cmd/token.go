package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"relief-coordination.com/relief-coordination/internal/auth"
	"relief-coordination.com/relief-coordination/pkg/constants"
)

var (
	tokenUserID string
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for an existing user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == "" {
			return errors.New("--user-id is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
		token, err := tokens.Issue(auth.Identity{UserID: tokenUserID, Role: tokenRole})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "user id to embed in the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", constants.RoleVolunteer, "role to embed in the token")

	rootCmd.AddCommand(tokenCmd)
}
