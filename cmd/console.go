package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/talents/internal/console"
	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/views"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the recruiting flow interactively in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		runConsole(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().StringP("view", "v", "", "initial screen: one of landing, public-job-list, candidate-registration, admin-login, admin-dashboard")
	consoleCmd.Flags().BoolP("memory", "m", false, "use an in-memory store seeded with demo data instead of the database")

	viper.BindPFlag("session.initial-view", consoleCmd.Flags().Lookup("view"))
	viper.BindPFlag("session.memory", consoleCmd.Flags().Lookup("memory"))
}

func runConsole(ctx context.Context) {
	logger, err := logger.NewConsole(viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	var st store.Store
	if config.Session.Memory {
		st, err = newMemoryStore(ctx, logger)
	} else {
		st, err = newStore(ctx, config, logger)
	}
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer st.Close()

	matcher, analyst := newAI(ctx, config.AI, logger)

	deps := views.Deps{Store: st, Matcher: matcher, Analyst: analyst, Logger: logger}
	authn, _, err := newAuth(config.Auth, logger)
	switch {
	case err == nil:
		deps.Auth = authn
	case errors.Is(err, errNoAdmins):
		logger.Warn("admin login is off", zap.String("hint", "add accounts under auth.admins, see talents hash-password"))
	default:
		logger.Fatal("configuring admin login", zap.Error(err))
	}

	router := views.New(deps)
	if err := router.Start(ctx, config.Session.InitialView); err != nil {
		logger.Fatal("starting the session", zap.Error(err))
	}

	if err := console.New(router, logger).Run(ctx); err != nil {
		logger.Fatal("session failed", zap.Error(err))
	}
}
