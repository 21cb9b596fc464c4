// Command bhmsctl is the operator CLI: schema migrations, admin accounts,
// license keys and service tokens.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/repository/composite"
	"github.com/kingrain94/bhms-api/internal/repository/postgres"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "bhmsctl",
	Short:         "BHMS operator tool",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openRepository connects to the writer and reader databases. Commands here
// never touch the search index.
func openRepository(log *logger.Logger) (repository.Repository, func(), error) {
	conns, err := config.NewDatabaseConnections(log.GormLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	repo := composite.New(postgres.NewPostgresRepository(conns), nil)
	return repo, func() { _ = conns.Close() }, nil
}

func cliLogger() *logger.Logger {
	return logger.NewLogger(os.Getenv("APP_ENV")).Named("bhmsctl")
}
