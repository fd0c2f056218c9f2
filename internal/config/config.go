package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the settlement server
type Config struct {
	Port         string
	LogLevel     string
	CloseAfter   time.Duration
	JobsInterval time.Duration
	MailFrom     string
}

// Load reads settings from the environment, falling back to defaults.
// Recognised variables: PORT, LOG_LEVEL, CLOSE_AFTER, JOBS_INTERVAL, MAIL_FROM.
func Load() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("close_after", 7*24*time.Hour)
	v.SetDefault("jobs_interval", time.Duration(0))
	v.SetDefault("mail_from", "no-reply@auctions.local")
	v.AutomaticEnv()

	return Config{
		Port:         ":" + strings.TrimPrefix(v.GetString("port"), ":"),
		LogLevel:     v.GetString("log_level"),
		CloseAfter:   v.GetDuration("close_after"),
		JobsInterval: v.GetDuration("jobs_interval"),
		MailFrom:     v.GetString("mail_from"),
	}
}
