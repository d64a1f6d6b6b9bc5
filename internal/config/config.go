package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Export  ExportConfig
	Share   ShareConfig
	Log     LogConfig
	UI      UIConfig
	Links   LinksConfig
	Studio  StudioConfig
}

// StorageConfig locates the secure store. An empty Secret means the
// passphrase comes from WEDPLAN_SECRET or the per-user secret file.
type StorageConfig struct {
	Path   string
	Secret string
}

type ExportConfig struct {
	Dir string
}

type ShareConfig struct {
	Enabled bool
}

type LogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// LinksConfig holds the about screen links.
type LinksConfig struct {
	Instagram string
	Facebook  string
	WhatsApp  string
}

type StudioConfig struct {
	Name    string
	Tagline string
}

// Load reads configuration from file and env. Env var overrides use prefix WEDPLAN_.
// path, when set, wins over WEDPLAN_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "wedplan")

	// default values
	v.SetDefault("storage.path", filepath.Join(dataDir, "wedplan.db"))
	v.SetDefault("storage.secret", "")
	v.SetDefault("export.dir", filepath.Join(home, "Documents", "wedplan"))
	v.SetDefault("share.enabled", true)
	v.SetDefault("log.path", filepath.Join(dataDir, "wedplan.log"))
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("links.instagram", "https://www.instagram.com")
	v.SetDefault("links.facebook", "https://www.facebook.com")
	v.SetDefault("links.whatsapp", "https://wa.me/5511999999999")
	v.SetDefault("studio.name", "Costa Matrimonial")
	v.SetDefault("studio.tagline", "Aqui você pode encontrar dicas para se preparar para o seu grande dia!")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("WEDPLAN_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultConfigDir(home))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WEDPLAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; a broken or missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Storage.Path = expandHome(c.Storage.Path, home)
	c.Export.Dir = expandHome(c.Export.Dir, home)
	c.Log.Path = expandHome(c.Log.Path, home)
	return c, nil
}

// DataDir is where the secret file lives: next to the database.
func (c Config) DataDir() string { return filepath.Dir(c.Storage.Path) }

func defaultConfigDir(home string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wedplan")
	}
	return filepath.Join(home, ".config", "wedplan")
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
