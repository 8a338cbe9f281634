package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Settings limits.
const (
	MinJumpHeight       = 600
	MaxJumpHeight       = 800
	MinSpeedSensitivity = 0.5
	MaxSpeedSensitivity = 2.0
)

// ColorSchemes and FontSizes list the accepted presentation values.
var (
	ColorSchemes = []string{"light", "dark"}
	FontSizes    = []string{"small", "normal", "large"}
)

// ErrUnknownSetting is returned by Set for a key that does not exist.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingKeys lists the keys accepted by Set, in display order.
var SettingKeys = []string{
	"jump_height",
	"speed_sensitivity",
	"boss_enabled",
	"power_ups_enabled",
	"math_mode",
	"difficulty",
	"color_scheme",
	"sound_enabled",
	"font_size",
}

// Normalize clamps numeric settings into range and replaces unknown enum
// values with their defaults. A zero jump height or sensitivity counts as
// unset.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()

	if s.JumpHeight == 0 {
		s.JumpHeight = def.JumpHeight
	}
	s.JumpHeight = clampFloat(s.JumpHeight, MinJumpHeight, MaxJumpHeight)

	if s.SpeedSensitivity == 0 {
		s.SpeedSensitivity = def.SpeedSensitivity
	}
	s.SpeedSensitivity = clampFloat(s.SpeedSensitivity, MinSpeedSensitivity, MaxSpeedSensitivity)

	s.MathMode = ParseMathMode(string(s.MathMode))
	s.Difficulty = ParseDifficulty(string(s.Difficulty))
	if !contains(ColorSchemes, s.ColorScheme) {
		s.ColorScheme = def.ColorScheme
	}
	if !contains(FontSizes, s.FontSize) {
		s.FontSize = def.FontSize
	}
	return s
}

// Get returns the string form of a setting.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "jump_height":
		return strconv.FormatFloat(s.JumpHeight, 'f', -1, 64), nil
	case "speed_sensitivity":
		return strconv.FormatFloat(s.SpeedSensitivity, 'f', -1, 64), nil
	case "boss_enabled":
		return strconv.FormatBool(s.BossEnabled), nil
	case "power_ups_enabled":
		return strconv.FormatBool(s.PowerUpsEnabled), nil
	case "math_mode":
		return string(s.MathMode), nil
	case "difficulty":
		return string(s.Difficulty), nil
	case "color_scheme":
		return s.ColorScheme, nil
	case "sound_enabled":
		return strconv.FormatBool(s.SoundEnabled), nil
	case "font_size":
		return s.FontSize, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSetting, key)
}

// Set parses value into the named setting and returns the normalized result.
func (s Settings) Set(key, value string) (Settings, error) {
	value = strings.TrimSpace(value)
	var err error

	switch key {
	case "jump_height":
		s.JumpHeight, err = strconv.ParseFloat(value, 64)
	case "speed_sensitivity":
		s.SpeedSensitivity, err = strconv.ParseFloat(value, 64)
	case "boss_enabled":
		s.BossEnabled, err = strconv.ParseBool(value)
	case "power_ups_enabled":
		s.PowerUpsEnabled, err = strconv.ParseBool(value)
	case "math_mode":
		if !MathMode(value).Valid() {
			err = fmt.Errorf("math mode must be one of addition, subtraction, multiplication, combined")
		}
		s.MathMode = MathMode(value)
	case "difficulty":
		if !Difficulty(value).Valid() {
			err = fmt.Errorf("difficulty must be one of easy, medium, hard, extremely-hard")
		}
		s.Difficulty = Difficulty(value)
	case "color_scheme":
		if !contains(ColorSchemes, value) {
			err = fmt.Errorf("color scheme must be one of %s", strings.Join(ColorSchemes, ", "))
		}
		s.ColorScheme = value
	case "sound_enabled":
		s.SoundEnabled, err = strconv.ParseBool(value)
	case "font_size":
		if !contains(FontSizes, value) {
			err = fmt.Errorf("font size must be one of %s", strings.Join(FontSizes, ", "))
		}
		s.FontSize = value
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}

	if err != nil {
		return s, fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return s.Normalize(), nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
