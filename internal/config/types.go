package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user configuration directory.
const AppName = "accommodate"

// Config is the application configuration file.
type Config struct {
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	HumanLogs     bool   `yaml:"human_logs"`
	Locale        string `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	SettingsPath  string `yaml:"settings_path"`
	ReadingBandPx int    `yaml:"reading_band_px" validate:"gte=0,lte=2000"`
	Server        Server `yaml:"server"`
}

// Server configures the HTTP host.
type Server struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
	// Root is the directory served under /pages.
	Root string `yaml:"root"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Locale:        "en",
		SettingsPath:  DefaultSettingsPath(),
		ReadingBandPx: 120,
		Server: Server{
			Addr: "127.0.0.1:8080",
			Root: ".",
		},
	}
}

// DefaultPath is the configuration file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultSettingsPath is where the settings tree is persisted by default.
func DefaultSettingsPath() string {
	return filepath.Join(configDir(), "settings.json")
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(dir, AppName)
}
