// Package config assembles bridge configuration from the environment and an
// optional YAML defaults file so main stays lean.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	consent "cmbridge/internal/consent/models"
	webview "cmbridge/internal/webview/models"
)

// Server captures diagnostics-server level configuration.
type Server struct {
	Addr     string
	Platform string
	Defaults Defaults
}

// Defaults is the optional declarative bridge configuration shipped alongside
// the application: the consent-rule source and the consent-layer appearance.
type Defaults struct {
	URL     consent.UrlConfig     `yaml:"url_config"`
	WebView webview.WebViewConfig `yaml:"webview_config"`
}

// FromEnv builds a Server config from environment variables. A .env file in
// the working directory is loaded first when present; real environment
// variables win over file entries.
func FromEnv() (Server, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := Server{
		Addr:     os.Getenv("CMBRIDGE_ADDR"),
		Platform: os.Getenv("CMBRIDGE_PLATFORM"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Platform == "" {
		cfg.Platform = "ios"
	}

	if path := os.Getenv("CMBRIDGE_DEFAULTS_FILE"); path != "" {
		defaults, err := LoadDefaults(path)
		if err != nil {
			return Server{}, err
		}
		cfg.Defaults = defaults
	}
	return cfg, nil
}

// LoadDefaults reads a YAML bridge-defaults file.
func LoadDefaults(path string) (Defaults, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("read defaults file: %w", err)
	}
	var defaults Defaults
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return Defaults{}, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	return defaults, nil
}
