package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	API     API     `mapstructure:"api"`
	Dataset Dataset `mapstructure:"dataset"`
	Charts  Charts  `mapstructure:"charts"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Dataset struct {
	Path string `mapstructure:"path"`
	// Delimiter is a single-character field separator; comma when empty.
	Delimiter string `mapstructure:"delimiter"`
	// SpendThreshold is the gambling spend cutoff for the minimum spend
	// filter toggle; 100 when unset.
	SpendThreshold float64 `mapstructure:"spend_threshold"`
}

type Charts struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DelimiterRune converts the configured delimiter string to the rune the
// CSV reader expects. Returns 0 (meaning "default") when unset.
func (d Dataset) DelimiterRune() (rune, error) {
	switch len([]rune(d.Delimiter)) {
	case 0:
		return 0, nil
	case 1:
		return []rune(d.Delimiter)[0], nil
	default:
		return 0, fmt.Errorf("dataset delimiter must be a single character, got %q", d.Delimiter)
	}
}
