package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"impressions/config"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "jwt-secret"
	cfg.Web.SessionKey = strings.Repeat("s", 32)
	cfg.Web.CSRFKey = strings.Repeat("c", 32)
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Name = "impressions"
	cfg.Cache.Redis.Primary.Host = "localhost"
	cfg.External.S3.BucketName = "impressions"
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(cfg *config.Config)
		wantErr     bool
		wantMessage string
	}{
		{
			name:    "complete configuration",
			mutate:  func(_ *config.Config) {},
			wantErr: false,
		},
		{
			name:        "missing jwt secret",
			mutate:      func(cfg *config.Config) { cfg.JWT.AccessSecret = "" },
			wantErr:     true,
			wantMessage: "JWT_ACCESS_SECRET",
		},
		{
			name:        "short session key",
			mutate:      func(cfg *config.Config) { cfg.Web.SessionKey = "short" },
			wantErr:     true,
			wantMessage: "WEB_SESSION_KEY",
		},
		{
			name:        "csrf key with wrong length",
			mutate:      func(cfg *config.Config) { cfg.Web.CSRFKey = strings.Repeat("c", 16) },
			wantErr:     true,
			wantMessage: "WEB_CSRF_KEY",
		},
		{
			name:        "kafka enabled without brokers",
			mutate:      func(cfg *config.Config) { cfg.Kafka.Enable = true },
			wantErr:     true,
			wantMessage: "KAFKA_BROKERS",
		},
		{
			name: "kafka enabled with brokers",
			mutate: func(cfg *config.Config) {
				cfg.Kafka.Enable = true
				cfg.Kafka.Brokers = []string{"localhost:9092"}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, config.ErrMissingConfig))
				assert.Contains(t, err.Error(), tt.wantMessage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateReportsEveryMissingValue(t *testing.T) {
	err := (&config.Config{}).Validate()

	assert.Error(t, err)

	for _, key := range []string{"JWT_ACCESS_SECRET", "WEB_SESSION_KEY", "WEB_CSRF_KEY", "CACHE_REDIS_PRIMARY_HOST"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfig_ValidateSeed(t *testing.T) {
	cfg := &config.Config{}
	assert.Error(t, cfg.ValidateSeed())

	cfg.Seed.AdminUsername = "studio"
	assert.ErrorContains(t, cfg.ValidateSeed(), "SEED_ADMIN_PASSWORD")

	cfg.Seed.AdminPassword = "a-long-password"
	assert.NoError(t, cfg.ValidateSeed())
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &config.Config{}

	cfg.Server.Env = "development"
	assert.True(t, cfg.IsDevelopment())

	cfg.Server.Env = "production"
	assert.False(t, cfg.IsDevelopment())
}
