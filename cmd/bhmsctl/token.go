package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/utils"
)

var tokenCmd = &cobra.Command{
	Use:   "token <email>",
	Short: "Issue an access token for an existing user",
	Long: `Issue an access token for an existing user, signed with JWT_SECRET_KEY.
Useful for smoke tests against a running API.

Example:
  export TOKEN="$(bhmsctl token owner@example.com --ttl 1h)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := os.Getenv("JWT_SECRET_KEY")
		if secret == "" {
			return fmt.Errorf("JWT_SECRET_KEY environment variable is required")
		}
		ttl, _ := cmd.Flags().GetDuration("ttl")

		log := cliLogger()
		repo, closeDB, err := openRepository(log)
		if err != nil {
			return err
		}
		defer closeDB()

		ctx := cmd.Context()
		user, err := repo.User().GetByEmail(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to find user %s: %w", args[0], err)
		}

		identity := utils.Identity{UserID: user.ID, Role: string(user.Role)}
		switch user.Role {
		case domain.RoleOwner:
			owner, err := repo.Owner().GetByUserID(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to load owner profile: %w", err)
			}
			identity.OwnerID = owner.ID
		case domain.RoleTenant:
			tenant, err := repo.Tenant().GetByUserID(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to load tenant profile: %w", err)
			}
			identity.OwnerID = tenant.OwnerID
			identity.TenantID = tenant.ID
		}

		token, err := utils.NewTokenManager(secret, ttl).Issue(identity)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), token.Token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
