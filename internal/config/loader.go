package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const presetsFile = "presets.yaml"

// LoadPresets loads the preset file.
// Search order: customPath -> ~/.codebreaker/presets.yaml -> ./configs/presets.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. The other
// locations are optional and skipped when missing or broken.
func LoadPresets(customPath string) (PresetFile, error) {
	var f PresetFile

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return f, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := f.Validate(); err != nil {
			return f, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return f, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(presetsFile), filepath.Join("configs", presetsFile)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPresetsYAML, &f); err != nil || f.Validate() != nil {
		return DefaultPresets(), nil // Fallback to hardcoded if embed fails
	}
	return f, nil
}

// tryLoad reads an optional presets file. It reports false when the file is
// missing, unparsable or invalid.
func tryLoad(path string) (PresetFile, bool) {
	var f PresetFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, false
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, false
	}
	if err := f.Validate(); err != nil {
		return f, false
	}
	return f, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codebreaker", filename)
}
