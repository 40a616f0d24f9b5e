package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	minSessionKeyLength = 32
	csrfKeyLength       = 32
)

var ErrMissingConfig = errors.New("missing required configuration")

type Database struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"impressions"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS" default:"30"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
		AdminHost struct {
			Restrict bool `envconfig:"RESTRICT"`
		} `envconfig:"ADMIN_HOST"`
		AuthGate struct {
			TimeoutMs int `envconfig:"TIMEOUT_MS" default:"5000"`
		} `envconfig:"AUTH_GATE"`
	} `envconfig:"APP"`

	Web struct {
		SessionKey     string   `envconfig:"SESSION_KEY"`
		CSRFKey        string   `envconfig:"CSRF_KEY"`
		CookieSecure   bool     `envconfig:"COOKIE_SECURE"`
		CookieDomain   string   `envconfig:"COOKIE_DOMAIN"`
		TrustedOrigins []string `envconfig:"TRUSTED_ORIGINS"`
	} `envconfig:"WEB"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"720"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int      `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int      `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string   `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool     `envconfig:"AUTO_MIGRATE"`
			Prefix         string   `envconfig:"PREFIX"`
			Read           Database `envconfig:"READ"`
			Write          Database `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			BucketName      string `envconfig:"BUCKET_NAME"`
			Directory       string `envconfig:"DIRECTORY" default:"uploads"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			MaxUploadMB     int    `envconfig:"MAX_UPLOAD_MB" default:"8"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`

	Kafka struct {
		Enable        bool     `envconfig:"ENABLE"`
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP" default:"impressions-notifier"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			InquiryCreated string `envconfig:"INQUIRY_CREATED" default:"inquiry.created"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	Seed struct {
		AdminUsername string `envconfig:"ADMIN_USERNAME"`
		AdminPassword string `envconfig:"ADMIN_PASSWORD"`
		SampleContent bool   `envconfig:"SAMPLE_CONTENT"`
	} `envconfig:"SEED"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Env, "development")
}

// Validate checks the secrets the server cannot run without. There are no
// built-in fallbacks for any of them.
func (c *Config) Validate() error {
	var missing []string

	if c.JWT.AccessSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}

	if len(c.Web.SessionKey) < minSessionKeyLength {
		missing = append(missing, fmt.Sprintf("WEB_SESSION_KEY (at least %d bytes)", minSessionKeyLength))
	}

	if len(c.Web.CSRFKey) != csrfKeyLength {
		missing = append(missing, fmt.Sprintf("WEB_CSRF_KEY (exactly %d bytes)", csrfKeyLength))
	}

	if c.DB.Postgres.Write.Host == "" || c.DB.Postgres.Write.Name == "" {
		missing = append(missing, "DB_POSTGRES_WRITE_HOST/DB_POSTGRES_WRITE_NAME")
	}

	if c.Cache.Redis.Primary.Host == "" {
		missing = append(missing, "CACHE_REDIS_PRIMARY_HOST")
	}

	if c.External.S3.BucketName == "" || c.External.S3.AccessKeyID == "" || c.External.S3.SecretAccessKey == "" {
		missing = append(missing, "EXTERNAL_S3_BUCKET_NAME/ACCESS_KEY_ID/SECRET_ACCESS_KEY")
	}

	if c.Kafka.Enable && len(c.Kafka.Brokers) == 0 {
		missing = append(missing, "KAFKA_BROKERS")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateSeed checks the credentials required by the setup command.
func (c *Config) ValidateSeed() error {
	var missing []string

	if c.Seed.AdminUsername == "" {
		missing = append(missing, "SEED_ADMIN_USERNAME")
	}

	if c.Seed.AdminPassword == "" {
		missing = append(missing, "SEED_ADMIN_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	return nil
}
