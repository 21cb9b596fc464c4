package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/service"
)

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Manage subscription license keys",
}

var licenseGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate license keys",
	Long: `Generate license keys and print one per line.

Example:
  bhmsctl license generate --plan standard --days 30 --price 199000 --count 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, _ := cmd.Flags().GetString("plan")
		days, _ := cmd.Flags().GetInt("days")
		priceText, _ := cmd.Flags().GetString("price")
		maxRooms, _ := cmd.Flags().GetInt("max-rooms")
		count, _ := cmd.Flags().GetInt("count")

		price, err := decimal.NewFromString(priceText)
		if err != nil {
			return fmt.Errorf("invalid --price: %w", err)
		}
		if days < 1 || count < 1 {
			return fmt.Errorf("--days and --count must be positive")
		}

		log := cliLogger()
		repo, closeDB, err := openRepository(log)
		if err != nil {
			return err
		}
		defer closeDB()

		subscriptions := service.NewSubscriptionService(repo, &config.Config{}, log)
		keys, err := subscriptions.GenerateKeys(cmd.Context(), dto.GenerateLicenseKeysRequest{
			Plan:         plan,
			DurationDays: days,
			Price:        price,
			MaxRooms:     maxRooms,
			Count:        count,
		})
		if err != nil {
			return err
		}
		for _, key := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), key.Key)
		}
		return nil
	},
}

func init() {
	licenseGenerateCmd.Flags().String("plan", "standard", "Plan name")
	licenseGenerateCmd.Flags().Int("days", 30, "Subscription length in days")
	licenseGenerateCmd.Flags().String("price", "0", "Price recorded on the key")
	licenseGenerateCmd.Flags().Int("max-rooms", 0, "Room limit, 0 for unlimited")
	licenseGenerateCmd.Flags().Int("count", 1, "Number of keys")
	licenseCmd.AddCommand(licenseGenerateCmd)
	rootCmd.AddCommand(licenseCmd)
}
