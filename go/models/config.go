package models

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
)

const (
	DecoderCapstone = "capstone"
	DecoderGo       = "go"

	SyntaxIntel = "intel"
	SyntaxATT   = "att"
	SyntaxNASM  = "nasm"
)

type Config struct {
	Decoder string `json:"decoder,omitempty"`
	Syntax  string `json:"syntax,omitempty"`
	Color   bool   `json:"color,omitempty"`
	Verbose bool   `json:"verbose,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{Decoder: DecoderCapstone, Syntax: SyntaxIntel}
}

func (c *Config) Validate() error {
	switch c.Decoder {
	case DecoderCapstone, DecoderGo:
	default:
		return errors.Errorf("unknown decoder %q (capstone or go)", c.Decoder)
	}
	switch c.Syntax {
	case SyntaxIntel, SyntaxATT, SyntaxNASM:
	default:
		return errors.Errorf("unknown syntax %q (intel, att or nasm)", c.Syntax)
	}
	return nil
}

// LoadConfig returns the defaults overlaid with the first config.json found in
// the user or system config folders. A missing file is not an error.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()
	configDirs := configdir.New("lunixbochs", "asmcorn")
	folder := configDirs.QueryFolderContainsFile("config.json")
	if folder == nil {
		return config, nil
	}
	data, err := folder.ReadFile("config.json")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filepath.Join(folder.Path, "config.json"))
	}
	return config, config.Validate()
}

// CachePath returns a file path in the user cache folder, or "" if the folder
// can't be created.
func CachePath(name string) string {
	cache := configdir.New("lunixbochs", "asmcorn").QueryCacheFolder()
	if err := cache.MkdirAll(); err != nil {
		return ""
	}
	return filepath.Join(cache.Path, name)
}
