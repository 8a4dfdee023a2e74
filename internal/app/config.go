package app

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mordilloSan/go-consolelog/logger"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the burst settings resolved from flags and CONSOLELOG_* env.
type Config struct {
	Level      string `validate:"oneof=trace debug info warn error fatal"`
	Goroutines int    `validate:"min=1,max=10000"`
	Count      int    `validate:"min=1,max=100000"`
	Message    string `validate:"required"`
}

var validate = validator.New()

func loadConfig(v *viper.Viper, args []string) (*Config, error) {
	cfg := &Config{
		Level:      strings.ToLower(strings.TrimSpace(v.GetString("level"))),
		Goroutines: v.GetInt("goroutines"),
		Count:      v.GetInt("count"),
		Message:    strings.Join(args, " "),
	}
	if cfg.Message == "" {
		cfg.Message = "hello"
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// level is only called on a validated Config.
func (c *Config) level() logger.Level {
	l, err := logger.ParseLevel(c.Level)
	if err != nil {
		return logger.InfoLevel
	}
	return l
}
