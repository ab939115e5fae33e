package mailer

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds transport configuration. The Postmark tokens are optional so
// development environments can run on the filesystem sender alone.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL,required"`
}

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // the file is optional
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
