package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/store/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}
		if strings.TrimSpace(config.Database.URL) == "" {
			logger.Fatal("database is not configured", zap.String("hint", "set DATABASE_URL or database.url"))
		}

		pg, err := postgres.Connect(ctx, config.Database.URL, logger)
		if err != nil {
			logger.Fatal("connecting to the database", zap.Error(err))
		}
		defer pg.Close()

		if err := pg.Migrate(ctx); err != nil {
			logger.Fatal("migrating", zap.Error(err))
		}
		logger.Info("schema is up to date")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
