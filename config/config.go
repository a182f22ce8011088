package config

import (
	"time"

	"main/utils"
)

type ServerConfig struct {
	Port            string
	BaseURL         string // External URL used in confirmation links
	EmailDir        string // File-drop directory for outbound mail
	SessionDuration time.Duration
	SessionIdleMax  time.Duration // Inactivity window before a session is ended
	CookieSecure    bool
	RedisURL        string // Optional; empty disables the session cache
	MaxBodyBytes    int64  // Request body cap for the JSON API
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnvAsString("PORT", "8080"),
		BaseURL:         utils.GetEnvAsString("APP_BASE_URL", ""),
		EmailDir:        utils.GetEnvAsString("EMAIL_DIR", "var/emails"),
		SessionDuration: utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		SessionIdleMax:  utils.GetEnvAsDuration("SESSION_IDLE_MAX", 48*time.Hour),
		CookieSecure:    utils.GetEnvAsBool("COOKIE_SECURE", true),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
		MaxBodyBytes:    int64(utils.GetEnvAsInt("MAX_BODY_BYTES", 1<<20)),
	}
}
