package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/service"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage platform admins",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account. Admins cannot register through the API.

Example:
  bhmsctl admin create --email ops@example.com --name "Ops" --password "$ADMIN_PASSWORD"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		password, _ := cmd.Flags().GetString("password")
		if email == "" {
			return errors.New("--email is required")
		}
		if name == "" {
			name = email
		}

		log := cliLogger()
		repo, closeDB, err := openRepository(log)
		if err != nil {
			return err
		}
		defer closeDB()

		cfg := &config.Config{PhoneRegion: "VN"}
		auth := service.NewAuthService(repo, nil, nil, nil, cfg, log)
		user, err := auth.CreateAdmin(cmd.Context(), email, password, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().String("email", "", "Admin email")
	adminCreateCmd.Flags().String("name", "", "Full name (default: email)")
	adminCreateCmd.Flags().String("password", "", "Password, at least 8 characters")
	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}
