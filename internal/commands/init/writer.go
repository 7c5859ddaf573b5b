package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/marginalia/internal/core/config"
)

const configHeader = "# marginalia configuration\n# Run 'marginalia config validate' after editing.\n\n"

// ConfigOptions are the answers collected by the wizard.
type ConfigOptions struct {
	Theme      string
	SliderStep int
}

// GenerateConfig builds a config from the defaults and the wizard answers.
func GenerateConfig(opts ConfigOptions) config.Config {
	cfg := config.DefaultConfig()
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	if opts.SliderStep > 0 {
		cfg.SliderStep = opts.SliderStep
	}
	return cfg
}

// WriteConfig validates cfg and writes it as YAML, creating parent
// directories as needed.
func WriteConfig(cfg config.Config, configPath string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(configPath, append([]byte(configHeader), data...), 0o644)
}
