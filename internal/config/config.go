package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidValue   error = errors.New("invalid environment variable value")
)

const (
	envFileEnvKey     = "ENV_FILE"
	apiPortEnvKey     = "API_PORT"
	logLevelEnvKey    = "LOG_LEVEL"
	backendEnvKey     = "LEDGER_BACKEND"
	dataDirEnvKey     = "LEDGER_DATA_DIR"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	mongoURIEnvKey    = "MONGODB_URI"
	mongoDBEnvKey     = "MONGODB_DATABASE"
	fiatRateEnvKey    = "FIAT_PER_COIN"
	confirmMinEnvKey  = "CONFIRM_MIN_MS"
	confirmMaxEnvKey  = "CONFIRM_MAX_MS"
	pollEnvKey        = "POLL_INTERVAL_MS"
	failureRateEnvKey = "FAILURE_RATE"
)

const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type App struct {
	Port            string
	LogLevel        string
	Backend         string
	DataDir         string
	DBConnectionURL string
	MongoURI        string
	MongoDatabase   string
	FiatPerCoin     float64
	ConfirmMin      time.Duration
	ConfirmMax      time.Duration
	PollInterval    time.Duration
	FailureRate     float64
}

// NewApp reads the application configuration from the environment. A .env
// file is loaded first when present; variables already set in the process
// environment take precedence over it.
func NewApp() (App, error) {
	envFile := ".env"
	if v, ok := os.LookupEnv(envFileEnvKey); ok {
		envFile = v
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return App{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	cfg := App{
		Port:          port,
		LogLevel:      lookupString(logLevelEnvKey, "info"),
		Backend:       lookupString(backendEnvKey, BackendBadger),
		DataDir:       lookupString(dataDirEnvKey, "./data/ledger"),
		MongoURI:      lookupString(mongoURIEnvKey, ""),
		MongoDatabase: lookupString(mongoDBEnvKey, "scholarledger"),
	}
	cfg.DBConnectionURL, _ = os.LookupEnv(dbConnEnvKey)

	var err error
	if cfg.FiatPerCoin, err = lookupFloat(fiatRateEnvKey, 200000); err != nil {
		return App{}, err
	}
	if cfg.FailureRate, err = lookupFloat(failureRateEnvKey, 0); err != nil {
		return App{}, err
	}
	if cfg.ConfirmMin, err = lookupMillis(confirmMinEnvKey, 2000); err != nil {
		return App{}, err
	}
	if cfg.ConfirmMax, err = lookupMillis(confirmMaxEnvKey, 3000); err != nil {
		return App{}, err
	}
	if cfg.PollInterval, err = lookupMillis(pollEnvKey, 500); err != nil {
		return App{}, err
	}

	if err := cfg.validate(); err != nil {
		return App{}, err
	}

	return cfg, nil
}

func (a App) validate() error {
	switch a.Backend {
	case BackendMemory, BackendBadger:
	case BackendPostgres:
		if a.DBConnectionURL == "" {
			return fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
		}
	case BackendMongo:
		if a.MongoURI == "" {
			return fmt.Errorf("%w: %s", errEnvVarNotFound, mongoURIEnvKey)
		}
	default:
		return fmt.Errorf("%w: %s=%q", errInvalidValue, backendEnvKey, a.Backend)
	}

	if a.FiatPerCoin <= 0 {
		return fmt.Errorf("%w: %s must be positive", errInvalidValue, fiatRateEnvKey)
	}
	if a.FailureRate < 0 || a.FailureRate > 1 {
		return fmt.Errorf("%w: %s must be within [0, 1]", errInvalidValue, failureRateEnvKey)
	}
	if a.ConfirmMin <= 0 || a.ConfirmMax < a.ConfirmMin {
		return fmt.Errorf("%w: confirmation delay window [%s, %s]", errInvalidValue, a.ConfirmMin, a.ConfirmMax)
	}
	if a.PollInterval <= 0 {
		return fmt.Errorf("%w: %s must be positive", errInvalidValue, pollEnvKey)
	}

	return nil
}

func lookupString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func lookupFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
	return f, nil
}

func lookupMillis(key string, def int64) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return time.Duration(def) * time.Millisecond, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
