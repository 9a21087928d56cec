package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr   string `env:"RUN_ADDRESS"`
	DBConnect string `env:"DATABASE_URI"`
	LogLevel  string `env:"LOG_LEVEL"`

	JWTSecret    string `env:"JWT_SECRET"`
	TokenTTLHour int    `env:"TOKEN_TTL_HOURS" envDefault:"12"`

	JerseyNumberMin int `env:"JERSEY_NUMBER_MIN" envDefault:"0"`
	JerseyNumberMax int `env:"JERSEY_NUMBER_MAX" envDefault:"500"`
	NameMaxLength   int `env:"NAME_MAX_LENGTH" envDefault:"40"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	EmailFrom    string `env:"EMAIL_FROM"`
	AdminEmail   string `env:"ADMIN_EMAIL"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.DBConnect, "d", "", "database credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.StringVar(&config.JWTSecret, "s", "", "secret for signing admin session tokens")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
