package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"relief-coordination.com/relief-coordination/internal/auth"
	"relief-coordination.com/relief-coordination/pkg/constants"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the user directory",
}

var (
	userName  string
	userEmail string
	userRole  string
)

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user and print a bearer token for them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(userName) == "" || strings.TrimSpace(userEmail) == "" {
			return errors.New("--name and --email are required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, closeStore, err := openStore(ctx, cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer closeStore()

		user := &model.User{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(userName),
			Email:     strings.ToLower(strings.TrimSpace(userEmail)),
			Role:      userRole,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return err
		}

		tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
		token, err := tokens.Issue(auth.Identity{UserID: user.ID, Role: user.Role})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "id:    %s\n", user.ID)
		fmt.Fprintf(out, "role:  %s\n", user.Role)
		fmt.Fprintf(out, "token: %s\n", token)
		return nil
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&userName, "name", "", "display name")
	usersAddCmd.Flags().StringVar(&userEmail, "email", "", "unique email address")
	usersAddCmd.Flags().StringVar(&userRole, "role", constants.RoleVolunteer, "role (authority or volunteer)")

	usersCmd.AddCommand(usersAddCmd)
	rootCmd.AddCommand(usersCmd)
}
