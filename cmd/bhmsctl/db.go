package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/db"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database schema",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply all pending migrations",
	Long: `Apply all pending migrations.

The connection comes from DB_WRITER_* environment variables.

Example:
  bhmsctl db migrate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		migrator, err := db.NewMigrator(config.GetWriterConfig().URL())
		if err != nil {
			return err
		}
		defer migrator.Close()

		version, changed, err := migrator.Up()
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Database is up to date at version %d\n", version)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %d\n", version)
		return nil
	},
}

var dbDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations",
	Long: `Roll back migrations (default: 1).

Example:
  bhmsctl db down      # Roll back 1 migration
  bhmsctl db down 2    # Roll back 2 migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("steps must be a positive integer, got %q", args[0])
			}
			steps = n
		}

		migrator, err := db.NewMigrator(config.GetWriterConfig().URL())
		if err != nil {
			return err
		}
		defer migrator.Close()

		version, err := migrator.Down(steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s), now at version %d\n", steps, version)
		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the applied migration version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		migrator, err := db.NewMigrator(config.GetWriterConfig().URL())
		if err != nil {
			return err
		}
		defer migrator.Close()

		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		files, err := db.MigrationFiles()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %d (dirty: %v), %d migrations embedded\n", version, dirty, len(files))
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbDownCmd)
	dbCmd.AddCommand(dbStatusCmd)
	rootCmd.AddCommand(dbCmd)
}
