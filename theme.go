package retained

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// themeFile is the on-disk TOML shape for a theme.
//
//	[font]
//	name = "default"
//	size = 14.0
//
//	[colors]
//	label = "#FFFFFF"
//	focus = "#00FFFF"
type themeFile struct {
	Font struct {
		Name string  `toml:"name"`
		Size float64 `toml:"size"`
	} `toml:"font"`
	Colors struct {
		Label string `toml:"label"`
		Focus string `toml:"focus"`
	} `toml:"colors"`
}

// LoadTheme reads a TOML theme file and returns DefaultEnv with the
// file's values applied on top. Missing fields keep their defaults.
func LoadTheme(path string) (*Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	env := DefaultEnv()
	if tf.Font.Name != "" {
		env.Set(KeyFontName, tf.Font.Name)
	}
	if tf.Font.Size > 0 {
		env.Set(KeyTextSize, float32(tf.Font.Size))
	}
	if tf.Colors.Label != "" {
		c, err := ParseColor(tf.Colors.Label)
		if err != nil {
			return nil, fmt.Errorf("theme label color: %w", err)
		}
		env.Set(KeyLabelColor, c)
	}
	if tf.Colors.Focus != "" {
		c, err := ParseColor(tf.Colors.Focus)
		if err != nil {
			return nil, fmt.Errorf("theme focus color: %w", err)
		}
		env.Set(KeyFocusColor, c)
	}
	return env, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed RGBA color.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
