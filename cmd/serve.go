package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API for the web front end",
	Run: func(cmd *cobra.Command, _ []string) {
		runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "listen address (default :8080)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(parent context.Context) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talents api", zap.String("version", version))

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, config, logger)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}
	defer st.Close()

	matcher, analyst := newAI(ctx, config.AI, logger)

	deps := server.Deps{Store: st, Matcher: matcher, Analyst: analyst, Logger: logger}
	authn, tokens, err := newAuth(config.Auth, logger)
	switch {
	case err == nil:
		deps.Auth = authn
		deps.Tokens = tokens
	case errors.Is(err, errNoAdmins):
		logger.Warn("admin api is off", zap.String("hint", "add accounts under auth.admins, see talents hash-password"))
	default:
		logger.Fatal("configuring admin login", zap.Error(err))
	}

	srv := server.New(deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen(config.Server.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
