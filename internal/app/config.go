package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"go.uber.org/zap/zapcore"
)

// maxTicketPlaces bounds the average ticket precision to sub-cent values
// that still make sense for money.
const maxTicketPlaces = 8

// Config holds the cart core configuration, loadable from environment
// variables (CART_ prefix) or YAML config files.
type Config struct {
	LogLevel string       `default:"info" usage:"Log level (debug, info, warn, error)" env:"LOG_LEVEL" yaml:"log_level"`
	Ticket   TicketConfig `env:"TICKET" yaml:"ticket"`
}

// TicketConfig controls the average ticket calculation.
type TicketConfig struct {
	Places int32 `default:"2" usage:"Decimal places the average ticket is rounded to" env:"PLACES" yaml:"places"`
}

// DefaultFiles are the config files probed when LoadConfig gets none.
var DefaultFiles = []string{"cart.yaml", "/etc/cart/cart.yaml"}

// LoadConfig loads configuration from environment variables and the first
// existing YAML file of files (DefaultFiles if empty), then validates it.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CART",
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
			".yml":  aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	if c.Ticket.Places < 0 || c.Ticket.Places > maxTicketPlaces {
		return errors.Errorf("ticket places must be within [0, %d], got %d", maxTicketPlaces, c.Ticket.Places)
	}
	return nil
}
