/*
Package config loads the NVD API key from the XML configuration file and the
environment.
*/
package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaults.
const (
	DefaultPath   = "_internal/configuration.xml"
	APIKeyEnvName = "NVD_API_KEY"
)

// sentinel errors.
var (
	ErrAPIKeyMissing = errors.New("nvd_api_key element missing or empty")
)

// Config holds runtime configuration.
type Config struct {
	Path      string
	NVDAPIKey string
}

// Authenticated reports whether requests should carry the apiKey header.
func (c Config) Authenticated() bool {
	return c.NVDAPIKey != ""
}

type document struct {
	NVDAPIKey *string `xml:"nvd_api_key"`
}

// ReadAPIKey reads the nvd_api_key element located directly under the root
// element of the given XML file.
func ReadAPIKey(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var doc document
	if err = xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}

	if doc.NVDAPIKey == nil {
		return "", ErrAPIKeyMissing
	}

	key := strings.TrimSpace(*doc.NVDAPIKey)
	if key == "" {
		return "", ErrAPIKeyMissing
	}

	return key, nil
}

// LoadEnvFiles loads .env style files, missing files are ignored.
func LoadEnvFiles(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load builds Config. A key found in the environment wins over the XML file.
// The returned error describes why the XML file could not provide a key; the
// Config is always usable, unauthenticated when NVDAPIKey is empty.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Config{Path: path}

	key, err := ReadAPIKey(path)
	if err == nil {
		cfg.NVDAPIKey = key
	}

	if env := strings.TrimSpace(os.Getenv(APIKeyEnvName)); env != "" {
		cfg.NVDAPIKey = env
		return cfg, nil
	}

	return cfg, err
}
