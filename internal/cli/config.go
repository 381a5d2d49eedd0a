package cli

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pathkit/pkg/logging"
)

// config holds display defaults read from the optional config file at
// $XDG_CONFIG_HOME/pathkit/config.toml.
type config struct {
	ShowHidden bool `toml:"show_hidden"`
	Color      bool `toml:"color"`
}

func defaultConfig() config {
	return config{
		ShowHidden: false,
		Color:      true,
	}
}

// loadConfig reads the config file, falling back to defaults when it is
// missing or malformed.
func loadConfig() config {
	cfg := defaultConfig()

	path := filepath.Join(xdg.ConfigHome, "pathkit", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		logger := logging.GetLogger("cli.config")
		logger.Warn().
			Err(err).Str("path", path).Msg("ignoring malformed config file")
		return defaultConfig()
	}
	return cfg
}
