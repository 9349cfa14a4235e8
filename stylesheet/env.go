package stylesheet

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables LoadConfig reads,
// e.g. STYLEOPS_INJECTION_MODE.
const EnvPrefix = "STYLEOPS"

type fileConfig struct {
	InjectionMode string `mapstructure:"injection_mode"`
	DefaultPrefix string `mapstructure:"default_prefix"`
	Namespace     string `mapstructure:"namespace"`
}

// LoadConfig builds a Config from an optional config file and the
// environment. Environment variables take precedence over the file.
// An empty path reads the environment only.
//
// Recognized keys: injection_mode, default_prefix, namespace.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("injection_mode", defaults.InjectionMode.String())
	v.SetDefault("default_prefix", defaults.DefaultPrefix)
	v.SetDefault("namespace", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("stylesheet: read config %s: %w", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return Config{}, fmt.Errorf("stylesheet: decode config: %w", err)
	}

	mode, err := ParseInjectionMode(fc.InjectionMode)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults
	cfg.InjectionMode = mode
	if fc.DefaultPrefix != "" {
		cfg.DefaultPrefix = fc.DefaultPrefix
	}
	cfg.Namespace = fc.Namespace
	return cfg, nil
}
