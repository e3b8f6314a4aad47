package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	sourceRemote = "remote"
	sourceMock   = "mock"
)

type Config struct {
	endpoint       string
	dsn            string
	logLevel       string
	env            string
	authSecretKey  string
	tokenTTL       time.Duration
	allowedOrigins []string

	dataAPIURL     string
	dataAPIKey     string
	adminSource    string
	requestTimeout time.Duration

	adminUsername     string
	adminPassword     string
	adminPasswordHash string

	telegramBotToken string
	telegramChatID   string
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func envString(name string, target *string) {
	if value := os.Getenv(name); value != "" {
		*target = value
	}
}

func envDuration(name string, target *time.Duration) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*target = parsed
	return nil
}

func NewConfig(args []string) (Config, error) {
	var (
		config  Config
		origins string
	)

	flags := pflag.NewFlagSet("unlockd", pflag.ContinueOnError)
	flags.StringVarP(&config.endpoint, "address", "a", "localhost:8090", "address and port to run server")
	flags.StringVarP(&config.dsn, "database", "d", "", "data source name for database connection")
	flags.StringVar(&config.logLevel, "log-level", "error", "log level")
	flags.StringVar(&config.env, "env", "production", "environment: production or development")
	flags.DurationVar(&config.tokenTTL, "token-ttl", 12*time.Hour, "admin session lifetime")
	flags.StringVar(&origins, "allowed-origins", "*", "comma separated CORS origins")
	flags.StringVarP(&config.dataAPIURL, "data-api", "r", "http://localhost:8090", "base URL of the data API used by the admin panel")
	flags.StringVar(&config.dataAPIKey, "data-api-key", "", "key protecting non-public data API methods")
	flags.StringVar(&config.adminSource, "admin-source", sourceRemote, "admin panel data source: remote or mock")
	flags.DurationVar(&config.requestTimeout, "request-timeout", 10*time.Second, "timeout of data API requests")
	flags.StringVar(&config.adminUsername, "admin-username", "admin", "admin panel login")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	envString("RUN_ADDRESS", &config.endpoint)
	envString("DATABASE_URI", &config.dsn)
	envString("LOG_LEVEL", &config.logLevel)
	envString("ENV", &config.env)
	envString("ALLOWED_ORIGINS", &origins)
	envString("DATA_API_URL", &config.dataAPIURL)
	envString("DATA_API_KEY", &config.dataAPIKey)
	envString("ADMIN_SOURCE", &config.adminSource)
	envString("ADMIN_USERNAME", &config.adminUsername)
	envString("ADMIN_PASSWORD", &config.adminPassword)
	envString("ADMIN_PASSWORD_HASH", &config.adminPasswordHash)
	envString("TELEGRAM_BOT_TOKEN", &config.telegramBotToken)
	envString("TELEGRAM_ADMIN_CHAT_ID", &config.telegramChatID)

	if err := envDuration("REQUEST_TIMEOUT", &config.requestTimeout); err != nil {
		return Config{}, err
	}
	if err := envDuration("TOKEN_TTL", &config.tokenTTL); err != nil {
		return Config{}, err
	}

	if config.adminSource != sourceRemote && config.adminSource != sourceMock {
		return Config{}, fmt.Errorf("unknown admin source %q", config.adminSource)
	}

	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.allowedOrigins = append(config.allowedOrigins, origin)
		}
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		config.authSecretKey = secret
	} else if config.env == "production" {
		config.authSecretKey = generateRandomString(32)
		log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
	} else {
		config.authSecretKey = "development-key"
	}

	return config, nil
}
