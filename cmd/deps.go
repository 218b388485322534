package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talents/internal/ai"
	"github.com/spigell/talents/internal/ai/gemini"
	"github.com/spigell/talents/internal/auth"
	"github.com/spigell/talents/internal/logger"
	"github.com/spigell/talents/internal/secrets"
	"github.com/spigell/talents/internal/store"
	"github.com/spigell/talents/internal/store/postgres"
)

// newStore picks the backend: postgres when a URL is configured, otherwise
// the unconfigured store that fails every call with a readable message.
// Redis, when configured, caches the list reads.
func newStore(ctx context.Context, config *Config, log *zap.Logger) (store.Store, error) {
	url := strings.TrimSpace(config.Database.URL)
	if url == "" {
		log.Warn("database is not configured", zap.String("hint", "set DATABASE_URL or database.url"))
		return store.Unconfigured{}, nil
	}

	pg, err := postgres.Connect(ctx, url, logger.WithBackend(log, "postgres"))
	if err != nil {
		return nil, err
	}
	if config.Database.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
	}

	if strings.TrimSpace(config.Redis.Addr) == "" {
		return pg, nil
	}

	password, err := secrets.Optional(secrets.Source{
		Name:  "redis password",
		Value: config.Redis.Password,
		File:  config.Redis.PasswordFile,
	})
	if err != nil {
		pg.Close()
		return nil, err
	}

	cache := store.NewRedisCache(ctx, store.RedisOptions{
		Addr:     config.Redis.Addr,
		Password: password,
		DB:       config.Redis.DB,
	}, logger.WithBackend(log, "redis"))
	return store.NewCached(pg, cache, config.Redis.TTL, log), nil
}

// newMemoryStore returns an in-process store seeded with the demo catalog.
func newMemoryStore(ctx context.Context, log *zap.Logger) (store.Store, error) {
	mem := store.NewMemory()
	if _, err := seed(ctx, mem, logger.WithBackend(log, "memory")); err != nil {
		return nil, err
	}
	return mem, nil
}

// newAI builds the matcher and analyst. Any configuration problem disables
// AI with a hint instead of failing startup.
func newAI(ctx context.Context, config *AIConfig, log *zap.Logger) (ai.Matcher, ai.Analyst) {
	if config == nil || !config.Enabled {
		log.Info("ai is disabled by configuration")
		off := ai.Disabled{Hint: "set ai.enabled to true"}
		return off, off
	}

	provider := strings.ToLower(strings.TrimSpace(config.Provider))
	if provider == "" {
		provider = gemini.Provider
	}
	if provider != gemini.Provider {
		log.Warn("unsupported ai provider", zap.String("provider", provider))
		off := ai.Disabled{Hint: fmt.Sprintf("unsupported ai provider %q", provider)}
		return off, off
	}

	gc := config.Gemini
	if gc == nil {
		gc = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gc.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  gc.APIKeyFile,
	})
	if err != nil {
		log.Warn("ai is disabled", zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE or the 'ai.gemini.api-key-file' key in the configuration file"))
		off := ai.Disabled{Hint: err.Error()}
		return off, off
	}

	generator, err := gemini.NewGenerator(ctx, gemini.Options{
		APIKey:     apiKey,
		Model:      gc.Model,
		MaxRetries: gc.MaxRetries,
		Logger:     log,
	})
	if err != nil {
		log.Warn("ai is disabled", zap.Error(err))
		off := ai.Disabled{Hint: err.Error()}
		return off, off
	}

	log.Info("ai enabled", logger.AIFields(gemini.Provider, generator.Model())...)
	return gemini.NewMatcher(generator, log, gc.MaxLogLength), gemini.NewAnalyst(generator, log, gc.MaxLogLength)
}

var errNoAdmins = errors.New("no admin accounts configured")

// newAuth builds the admin authenticator and the token validator it signs
// with. Without admins or a token secret admin login stays off.
func newAuth(config *AuthConfig, log *zap.Logger) (*auth.StaticAuthenticator, *auth.Tokens, error) {
	if config == nil || len(config.Admins) == 0 {
		return nil, nil, errNoAdmins
	}

	secret, err := secrets.Load(secrets.Source{
		Name:  "token secret",
		Value: config.TokenSecret,
		Env:   "TALENTS_TOKEN_SECRET",
		File:  config.TokenSecretFile,
	})
	if err != nil {
		return nil, nil, err
	}

	passwords, err := auth.NewPasswords(config.PasswordCost, config.Pepper)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := auth.NewTokens(secret, config.TokenTTL)
	if err != nil {
		return nil, nil, err
	}
	authn, err := auth.NewStaticAuthenticator(config.Admins, passwords, tokens)
	if err != nil {
		return nil, nil, err
	}

	log.Info("admin login enabled", zap.Int("accounts", authn.Accounts()))
	return authn, tokens, nil
}
