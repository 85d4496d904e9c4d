package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/atomicstack/ace-config/internal/app"
	"github.com/spf13/viper"
)

// FileName is the optional configuration file looked up in the working
// directory.
const FileName = "ace-c.toml"

const (
	defaultStorageDir = "."
	defaultADB        = "adb"
	defaultRemotePath = "/storage/emulated/0/FIRST/ace-c-config.json"
	defaultLogFile    = "ace-c.log"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// Source is the configuration file that was read, empty when none was found.
	Source string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// LoadFrom reads ace-c.toml from dir. A missing file yields the defaults.
func LoadFrom(dir string) (Config, error) {
	v := newViper()
	v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read %s: %w", FileName, err)
		}
	}
	return fromViper(v), nil
}

// LoadFile reads configuration from an explicit path, which must exist.
func LoadFile(file string) (Config, error) {
	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", file, err)
	}
	return fromViper(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("storage.dir", defaultStorageDir)
	v.SetDefault("device.adb", defaultADB)
	v.SetDefault("device.remote_path", defaultRemotePath)
	v.SetDefault("logging.file", defaultLogFile)
	v.SetDefault("logging.trace", false)
	v.SetDefault("ui.alt_screen", true)
	return v
}

func fromViper(v *viper.Viper) Config {
	return Config{
		App: app.Config{
			StorageDir: v.GetString("storage.dir"),
			ADBCommand: v.GetString("device.adb"),
			RemotePath: v.GetString("device.remote_path"),
			AltScreen:  v.GetBool("ui.alt_screen"),
		},
		Logging: Logging{
			FilePath: v.GetString("logging.file"),
			Trace:    v.GetBool("logging.trace"),
		},
		Source: v.ConfigFileUsed(),
	}
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ADBCommand) == "" {
		return errors.New("device.adb must not be empty")
	}
	if !path.IsAbs(cfg.App.RemotePath) {
		return fmt.Errorf("device.remote_path must be absolute (got %q)", cfg.App.RemotePath)
	}
	if strings.TrimSpace(cfg.App.StorageDir) == "" {
		return errors.New("storage.dir must not be empty")
	}
	return nil
}
