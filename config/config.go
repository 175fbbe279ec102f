package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	RedisAddr          string
	NatsURL            string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	BcryptCost         int
	LoginMaxAttempts   int
	LockoutMinutes     int
}

// Load reads configuration from the environment. Secrets and the database
// URL have no defaults and must be present.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ACCESS_TOKEN_EXPIRY", 15)
	v.SetDefault("REFRESH_TOKEN_EXPIRY", 10080)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("LOGIN_MAX_ATTEMPTS", 5)
	v.SetDefault("LOCKOUT_DURATION", 30)

	cfg := &Config{
		Env:                v.GetString("ENV"),
		Port:               v.GetString("PORT"),
		DBURL:              v.GetString("DB_URL"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		NatsURL:            v.GetString("NATS_URL"),
		AccessTokenSecret:  v.GetString("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: v.GetString("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    v.GetInt("ACCESS_TOKEN_EXPIRY"),
		RefreshExpiryMin:   v.GetInt("REFRESH_TOKEN_EXPIRY"),
		BcryptCost:         v.GetInt("BCRYPT_COST"),
		LoginMaxAttempts:   v.GetInt("LOGIN_MAX_ATTEMPTS"),
		LockoutMinutes:     v.GetInt("LOCKOUT_DURATION"),
	}

	for key, val := range map[string]string{
		"DB_URL":               cfg.DBURL,
		"ACCESS_TOKEN_SECRET":  cfg.AccessTokenSecret,
		"REFRESH_TOKEN_SECRET": cfg.RefreshTokenSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
	}

	return cfg, nil
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryMin) * time.Minute
}

func (c *Config) LockoutDuration() time.Duration {
	return time.Duration(c.LockoutMinutes) * time.Minute
}
