package cmd

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/talents/internal/auth"
)

const (
	app = "talents"
)

type Config struct {
	Database *DatabaseConfig `mapstructure:"database"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	AI       *AIConfig       `mapstructure:"ai"`
	Auth     *AuthConfig     `mapstructure:"auth"`
	Server   *ServerConfig   `mapstructure:"server"`
	Session  *SessionConfig  `mapstructure:"session"`
}

type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	Migrate bool   `mapstructure:"migrate"`
}

type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	PasswordFile string        `mapstructure:"password-file"`
	DB           int           `mapstructure:"db"`
	TTL          time.Duration `mapstructure:"ttl"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type AuthConfig struct {
	TokenSecret     string         `mapstructure:"token-secret"`
	TokenSecretFile string         `mapstructure:"token-secret-file"`
	TokenTTL        time.Duration  `mapstructure:"token-ttl"`
	PasswordCost    int            `mapstructure:"password-cost"`
	Pepper          string         `mapstructure:"pepper"`
	Admins          []auth.Account `mapstructure:"admins"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type SessionConfig struct {
	InitialView string `mapstructure:"initial-view"`
	// Memory runs the console against an in-process store seeded with the
	// demo catalog instead of the database.
	Memory bool `mapstructure:"memory"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talents runs the Lendária recruiting flow: candidate sign-up, job postings and AI screening",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// envBindings map config keys to the plain variable names used by
// deployments and .env files. TALENTS_ prefixed names work for every key.
var envBindings = map[string][]string{
	"database.url":           {"DATABASE_URL"},
	"redis.addr":             {"REDIS_ADDR"},
	"redis.password":         {"REDIS_PASSWORD"},
	"ai.gemini.api-key":      {"GEMINI_API_KEY"},
	"ai.gemini.api-key-file": {"GEMINI_API_KEY_FILE"},
	"auth.token-secret":      {"TALENTS_TOKEN_SECRET", "JWT_SECRET"},
	"auth.pepper":            {"TALENTS_PASSWORD_PEPPER"},
}

func init() {
	viper.SetEnvPrefix(strings.ToUpper(app))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	for key, envs := range envBindings {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			log.Fatalf("binding %v environment variables: %v", envs, err)
		}
	}
	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talents.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func setDefaults() {
	viper.SetDefault("database.migrate", false)
	viper.SetDefault("redis.password-file", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl", "10m")
	viper.SetDefault("ai.enabled", true)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.gemini.model", "")
	viper.SetDefault("ai.gemini.max-retries", 0)
	viper.SetDefault("ai.gemini.max-log-length", 2000)
	viper.SetDefault("auth.token-secret-file", "")
	viper.SetDefault("auth.token-ttl", auth.DefaultTokenTTL.String())
	viper.SetDefault("auth.password-cost", 0)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("session.initial-view", "landing")
	viper.SetDefault("session.memory", false)
}

func initConfig() {
	loadDotEnv(".env.local", ".env")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// A missing default config file is fine: everything can come from env.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

// loadDotEnv loads the files in order. Variables already set win, so
// earlier files take precedence over later ones.
func loadDotEnv(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading %s: %v", f, err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Database == nil {
		config.Database = &DatabaseConfig{}
	}
	if config.Redis == nil {
		config.Redis = &RedisConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Auth == nil {
		config.Auth = &AuthConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Session == nil {
		config.Session = &SessionConfig{}
	}

	return config, nil
}
