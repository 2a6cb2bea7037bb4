package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/statusbar/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultInterval = 1
	DefaultLogLevel = string(LogLevelWarning)
	DefaultIcons    = string(IconSetEmoji)

	envPrefix  = "STATUSBAR"
	envConfig  = "STATUSBAR_CONFIG"
	configName = "statusbar"
	configType = "toml"
)

type Config struct {
	Interval int    `mapstructure:"interval"`
	LogLevel string `mapstructure:"log_level"`
	Monitor  bool   `mapstructure:"monitor"`
	Battery  string `mapstructure:"battery"`
	Icons    string `mapstructure:"icons"`
	PIDFile  string `mapstructure:"pidfile"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"interval":  "interval",
	"log-level": "log_level",
	"monitor":   "monitor",
	"battery":   "battery",
	"icons":     "icons",
	"pidfile":   "pidfile",
}

// Load reads configuration from defaults, the config file, STATUSBAR_*
// environment variables and args, in increasing order of precedence.
func Load(args []string) (*Config, error) {
	errFactory := errors.New()
	v := viper.New()

	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("monitor", false)
	v.SetDefault("battery", "")
	v.SetDefault("icons", DefaultIcons)
	v.SetDefault("pidfile", filepath.Join(os.TempDir(), "statusbar.pid"))

	fs := pflag.NewFlagSet("statusbar", pflag.ContinueOnError)
	fs.Int("interval", DefaultInterval, "Interval between updates in seconds")
	fs.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	fs.Bool("monitor", false, "Log readings instead of drawing the status bar")
	fs.String("battery", "", "Power service name (platform default when empty)")
	fs.String("icons", DefaultIcons, "Battery icon set (emoji, ascii)")
	fs.String("pidfile", "", "Path of the PID file")
	configFlag := fs.String("config", "", "Path of the configuration file")

	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := *configFlag
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath("/etc")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	// An empty --pidfile must not clobber the default
	if cfg.PIDFile == "" {
		cfg.PIDFile = filepath.Join(os.TempDir(), "statusbar.pid")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if !IconSet(c.Icons).IsValid() {
		return errFactory.WithData(errors.ErrInvalidIconSet, c.Icons)
	}

	return nil
}

func (c *Config) GetInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

func (c *Config) GetLogLevel() LogLevel {
	return LogLevel(c.LogLevel)
}

func (c *Config) IsMonitorMode() bool {
	return c.Monitor
}

func (c *Config) GetBattery() string {
	return c.Battery
}

func (c *Config) GetIconSet() IconSet {
	return IconSet(c.Icons)
}

func (c *Config) GetPIDFile() string {
	return c.PIDFile
}
