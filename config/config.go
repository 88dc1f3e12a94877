package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultAttemptsRetry  = 2000
	defaultLogValue       = true
	defaultMaxConn        = "10"
	defaultHTTPPort       = "8080"
	defaultCatalogTimeout = 10000
	defaultCatalogBaseURL = "https://www.googleapis.com/books/v1/volumes"
)

type (
	Config struct {
		HTTP struct {
			Port        string `env:"HTTP_PORT"`
			MetricsPort string `env:"METRICS_PORT"`
		}

		PG struct {
			URL      string
			Host     string `env:"POSTGRES_HOST"`
			Port     string `env:"POSTGRES_PORT"`
			DB       string `env:"POSTGRES_DB"`
			User     string `env:"POSTGRES_USER"`
			Password string `env:"POSTGRES_PASSWORD"`
			MaxConn  string `env:"POSTGRES_MAX_CONN"`
		}

		Catalog struct {
			BaseURL string        `env:"CATALOG_BASE_URL"`
			APIKey  string        `env:"CATALOG_API_KEY"`
			Timeout time.Duration `env:"CATALOG_TIMEOUT_MS"`
		}

		Outbox struct {
			Enabled         bool          `env:"OUTBOX_ENABLED"`
			Workers         int           `env:"OUTBOX_WORKERS"`
			BatchSize       int           `env:"OUTBOX_BATCH_SIZE"`
			WaitTimeMS      time.Duration `env:"OUTBOX_WAIT_TIME_MS"`
			InProgressTTLMS time.Duration `env:"OUTBOX_IN_PROGRESS_TTL_MS"`
			BookSavedURL    string        `env:"OUTBOX_BOOK_SAVED_URL"`
			BookRemovedURL  string        `env:"OUTBOX_BOOK_REMOVED_URL"`
			AttemptsRetry   int           `env:"OUTBOX_ATTEMPTS_RETRY"`
		}

		Log struct {
			LogController   bool `env:"LOG_CONTROLLER_ENABLED"`
			LogTransactor   bool `env:"LOG_TRANSACTOR_ENABLED"`
			LogUseCase      bool `env:"LOG_USECASE_ENABLED"`
			LogDBRepo       bool `env:"LOG_DB_REPO_ENABLED"`
			LogOutboxWorker bool `env:"LOG_OUTBOX_WORKER_ENABLED"`
		}
	}
)

func NewConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	v := viper.New()

	if cfg.HTTP.Port, err = parseEnvString(v, "http_port", "HTTP_PORT", defaultHTTPPort); err != nil {
		return nil, err
	}
	cfg.HTTP.MetricsPort = os.Getenv("METRICS_PORT")

	cfg.PG.Host = os.Getenv("POSTGRES_HOST")
	cfg.PG.Port = os.Getenv("POSTGRES_PORT")
	cfg.PG.DB = os.Getenv("POSTGRES_DB")
	cfg.PG.User = os.Getenv("POSTGRES_USER")
	cfg.PG.Password = os.Getenv("POSTGRES_PASSWORD")

	if cfg.PG.MaxConn, err = parseEnvString(v, "db_MaxCon", "POSTGRES_MAX_CONN", defaultMaxConn); err != nil {
		return nil, err
	}

	cfg.PG.URL = fmt.Sprintf("postgres://%s:%s@", cfg.PG.User, cfg.PG.Password) +
		net.JoinHostPort(cfg.PG.Host, cfg.PG.Port) + fmt.Sprintf("/%s?sslmode=disable", cfg.PG.DB) + fmt.Sprintf("&pool_max_conns=%s", cfg.PG.MaxConn)

	if cfg.Catalog.BaseURL, err = parseEnvString(v, "catalog_base_url", "CATALOG_BASE_URL", defaultCatalogBaseURL); err != nil {
		return nil, err
	}
	cfg.Catalog.APIKey = os.Getenv("CATALOG_API_KEY")

	if cfg.Catalog.Timeout, err = parseEnvTime(v, "catalog_timeout", "CATALOG_TIMEOUT_MS", defaultCatalogTimeout); err != nil {
		return nil, err
	}

	if cfg.Outbox.Enabled, err = parseEnvBool(v, "outbox", "OUTBOX_ENABLED"); err != nil {
		return nil, err
	}

	if cfg.Outbox.Enabled {
		if cfg.Outbox.Workers, err = parseInt(os.Getenv("OUTBOX_WORKERS")); err != nil {
			return nil, err
		}

		if cfg.Outbox.BatchSize, err = parseInt(os.Getenv("OUTBOX_BATCH_SIZE")); err != nil {
			return nil, err
		}

		if cfg.Outbox.WaitTimeMS, err = parseTime(os.Getenv("OUTBOX_WAIT_TIME_MS")); err != nil {
			return nil, err
		}

		if cfg.Outbox.InProgressTTLMS, err = parseTime(os.Getenv("OUTBOX_IN_PROGRESS_TTL_MS")); err != nil {
			return nil, err
		}

		cfg.Outbox.BookSavedURL = os.Getenv("OUTBOX_BOOK_SAVED_URL")
		cfg.Outbox.BookRemovedURL = os.Getenv("OUTBOX_BOOK_REMOVED_URL")

		if cfg.Outbox.AttemptsRetry, err = parseEnvInt(v, "attempts", "OUTBOX_ATTEMPTS_RETRY", defaultAttemptsRetry); err != nil {
			return nil, err
		}
	}

	if cfg.Log.LogController, err = parseEnvBool(v, "log_controller", "LOG_CONTROLLER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogTransactor, err = parseEnvBool(v, "log_transactor", "LOG_TRANSACTOR_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogUseCase, err = parseEnvBool(v, "log_usecase", "LOG_USECASE_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogDBRepo, err = parseEnvBool(v, "log_db", "LOG_DB_REPO_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	if cfg.Log.LogOutboxWorker, err = parseEnvBool(v, "log_outbox_worker", "LOG_OUTBOX_WORKER_ENABLED", defaultLogValue); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseTime(s string) (time.Duration, error) {
	t, err := parseInt(s)

	if err != nil {
		return time.Duration(0), err
	}

	return time.Duration(t) * time.Millisecond, nil
}

func parseInt(s string) (int, error) {
	str, err := strconv.ParseInt(s, 10, 64)

	if err != nil {
		return 0, err
	}

	return int(str), nil
}

func parseEnvBool(v *viper.Viper, key, envVar string, defaultValue ...bool) (bool, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return false, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetBool(key), nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvTime(v *viper.Viper, key, envVar string, defaultValueMS ...int) (time.Duration, error) {
	ms, err := parseEnvInt(v, key, envVar, defaultValueMS...)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
