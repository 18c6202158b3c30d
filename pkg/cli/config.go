package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/camlet-lang/camlet/internal/config"
)

// Config represents the top-level camlet.yaml configuration.
type Config struct {
	// Prompt overrides the interactive prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// Color enables or disables colored diagnostics. When nil, color is
	// used whenever stderr is a terminal.
	Color *bool `yaml:"color,omitempty"`

	// DumpTokens prints the token stream before parsing.
	DumpTokens bool `yaml:"dump_tokens,omitempty"`

	// DumpAST prints the parsed program before evaluation.
	DumpAST bool `yaml:"dump_ast,omitempty"`
}

// LoadConfig reads the configuration at path. An empty path falls back to
// camlet.yaml in the working directory; a missing fallback file is not an
// error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.ConfigFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
