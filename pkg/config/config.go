// Package config loads the bridge's persisted TOML configuration, with an
// environment variable override for the static asset path, using viper
// to merge defaults, file contents, and the fallback in one place.
package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// staticPathEnvVar overrides StaticPath when the config file leaves it
// unset.
const staticPathEnvVar = "AUTOMATO_STATIC_PATH"

// Config is the bridge's persisted configuration, plus a RedisAddr for
// the optional telemetry sink.
type Config struct {
	IP           string `mapstructure:"ip"`
	Port         uint16 `mapstructure:"port"`
	StaticPath   string `mapstructure:"static_path"`
	AutomatoIDs  []int  `mapstructure:"automato_ids"`
	RedisAddr    string `mapstructure:"redis_addr"`
	SerialDevice string `mapstructure:"serial_device"`
	SerialBaud   int    `mapstructure:"serial_baud"`
}

// AutomatoIDBytes returns AutomatoIDs narrowed to the u8 ids the wire
// protocol actually addresses.
func (c Config) AutomatoIDBytes() []byte {
	ids := make([]byte, len(c.AutomatoIDs))
	for i, v := range c.AutomatoIDs {
		ids[i] = byte(v)
	}
	return ids
}

// Default returns the configuration used when no config file is found.
func Default() Config {
	return Config{
		IP:           "127.0.0.1",
		Port:         8000,
		AutomatoIDs:  nil,
		SerialDevice: "/dev/ttyUSB0",
		SerialBaud:   115200,
	}
}

// Load reads path (a TOML file) into a Config seeded with Default(),
// then applies the AUTOMATO_STATIC_PATH environment override if
// StaticPath was left empty by the file.
func Load(path string) (Config, error) {
	cfg := Default()

	// AutomaticEnv is deliberately not used here: viper's env lookup takes
	// priority over the config file for every bound key, which would let
	// AUTOMATO_STATIC_PATH silently override a file-set static_path
	// instead of only filling it in when the file leaves it unset. The
	// explicit os.Getenv fallback below implements that contract
	// directly.
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	for key, val := range defaults(cfg) {
		v.SetDefault(key, val)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrapf(err, "load config %s", path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if cfg.StaticPath == "" {
		if envPath := os.Getenv(staticPathEnvVar); envPath != "" {
			cfg.StaticPath = envPath
		}
	}

	return cfg, nil
}

func defaults(cfg Config) map[string]interface{} {
	return map[string]interface{}{
		"ip":            cfg.IP,
		"port":          cfg.Port,
		"serial_device": cfg.SerialDevice,
		"serial_baud":   cfg.SerialBaud,
	}
}
