package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a settings file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for settings files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown settings format")

// LoadTuning loads simulation tuning.
// Search order: customPath -> ~/.quizjump/configs/tuning.yaml -> ./configs/tuning.yaml -> embedded default
func LoadTuning(customPath string) (Tuning, error) {
	// User files only override what they name.
	cfg := embeddedTuning()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("tuning.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "tuning.yaml")); err == nil {
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// embeddedTuning parses the embedded default YAML.
func embeddedTuning() Tuning {
	var cfg Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		return DefaultTuning() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.quizjump, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quizjump")
}

// FormatOf returns the settings format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// DecodeSettings parses settings over the defaults, so missing keys keep
// their default values. Malformed input returns the full defaults along
// with the error.
func DecodeSettings(data []byte, format Format) (Settings, error) {
	s := DefaultSettings()

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatTOML:
		_, err = toml.Decode(string(data), &s)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return s.Normalize(), nil
}

// EncodeSettings serializes settings in the given format.
func EncodeSettings(s Settings, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// LoadSettingsFile reads a YAML or TOML settings file chosen by extension.
// A missing file yields the defaults without error.
func LoadSettingsFile(path string) (Settings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return DefaultSettings(), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	s, err := DecodeSettings(data, format)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SaveSettingsFile writes settings to path in the format implied by its extension.
func SaveSettingsFile(path string, s Settings) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := EncodeSettings(s.Normalize(), format)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
