package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the fallbacks reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads a variant's configuration.
// Search order: customPath -> ~/.snake/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default. Files are decoded over the
// variant's defaults, so they only need the keys they change.
// The returned source names where the configuration came from.
func Load(variant, customPath string) (Config, string, error) {
	if variant == "" {
		variant = DefaultVariant
	}
	if _, ok := LookupVariant(variant); !ok {
		return Config{}, "", fmt.Errorf("unknown variant %q", variant)
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig(variant)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryFile(variant, path); ok {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig(variant)
	if err := yaml.Unmarshal(GetDefaultYAML(variant), &cfg); err != nil || cfg.Validate() != nil {
		return DefaultConfig(variant), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// tryFile is best-effort: unreadable, malformed or invalid files are skipped.
func tryFile(variant, path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := DefaultConfig(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Overrides are command-line adjustments applied after loading.
// Zero fields leave the loaded value alone.
type Overrides struct {
	BoardSize int
	TickMS    int
}

// Apply returns cfg with the non-zero overrides applied and re-validated.
// A resized board keeps the configured start unless the starting body no
// longer fits, in which case the start is recentred.
func (o Overrides) Apply(cfg Config) (Config, error) {
	if o.BoardSize != 0 {
		cfg.Board.Size = o.BoardSize
		if !cfg.startFits() {
			cfg.Snake.StartX = o.BoardSize / 2
			cfg.Snake.StartY = o.BoardSize / 2
		}
	}
	if o.TickMS != 0 {
		cfg.Timing.TickMS = o.TickMS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
