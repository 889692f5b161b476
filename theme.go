package uielements

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// Theme is the yaml-loadable per-instance style surface of a Checkbox.
//
// Every field is optional; omitted fields leave the control's current value
// untouched. Colors are hex strings ("#RRGGBB" or "#RRGGBBAA"), styles use
// their String() names ("square", "circle", "cross", "tick").
//
// Example document:
//
//	checkmark_style: tick
//	border_style: circle
//	border_line_width: 3
//	checkmark_size: 0.6
//	colors:
//	  checked_border: "#2ecc71"
//	  checkmark: "#2ecc71"
type Theme struct {
	CheckmarkStyle       string   `yaml:"checkmark_style"`
	BorderStyle          string   `yaml:"border_style"`
	BorderLineWidth      *float64 `yaml:"border_line_width"`
	CheckmarkSize        *float64 `yaml:"checkmark_size"`
	BorderCornerRadius   *float64 `yaml:"border_corner_radius"`
	IncreasedTouchRadius *float64 `yaml:"increased_touch_radius"`
	HapticFeedback       *bool    `yaml:"haptic_feedback"`

	Colors struct {
		UncheckedBorder string `yaml:"unchecked_border"`
		CheckedBorder   string `yaml:"checked_border"`
		Checkmark       string `yaml:"checkmark"`
		Background      string `yaml:"background"`
		CheckedFill     string `yaml:"checked_fill"`
		UncheckedFill   string `yaml:"unchecked_fill"`
	} `yaml:"colors"`
}

// ParseTheme decodes a yaml theme document.
func ParseTheme(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("uielements: parse theme: %w", err)
	}
	return t, nil
}

// LoadTheme reads and decodes a yaml theme file.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("uielements: load theme: %w", err)
	}
	return ParseTheme(data)
}

// Apply writes the theme's set fields to c through its setters, so each
// applied field requests a redraw. Unknown style names make Apply fail
// before any field is written.
func (t Theme) Apply(c *Checkbox) error {
	var (
		checkmarkStyle CheckmarkStyle
		borderStyle    BorderStyle
		err            error
	)
	if t.CheckmarkStyle != "" {
		if checkmarkStyle, err = ParseCheckmarkStyle(t.CheckmarkStyle); err != nil {
			return err
		}
	}
	if t.BorderStyle != "" {
		if borderStyle, err = ParseBorderStyle(t.BorderStyle); err != nil {
			return err
		}
	}

	if t.CheckmarkStyle != "" {
		c.SetCheckmarkStyle(checkmarkStyle)
	}
	if t.BorderStyle != "" {
		c.SetBorderStyle(borderStyle)
	}
	if t.BorderLineWidth != nil {
		c.SetBorderLineWidth(*t.BorderLineWidth)
	}
	if t.CheckmarkSize != nil {
		c.SetCheckmarkSize(*t.CheckmarkSize)
	}
	if t.BorderCornerRadius != nil {
		c.SetBorderCornerRadius(*t.BorderCornerRadius)
	}
	if t.IncreasedTouchRadius != nil {
		c.SetIncreasedTouchRadius(*t.IncreasedTouchRadius)
	}
	if t.HapticFeedback != nil {
		c.SetHapticFeedbackEnabled(*t.HapticFeedback)
	}

	if t.Colors.UncheckedBorder != "" {
		c.SetUncheckedBorderColor(gg.Hex(t.Colors.UncheckedBorder))
	}
	if t.Colors.CheckedBorder != "" {
		c.SetCheckedBorderColor(gg.Hex(t.Colors.CheckedBorder))
	}
	if t.Colors.Checkmark != "" {
		c.SetCheckmarkColor(gg.Hex(t.Colors.Checkmark))
	}
	if t.Colors.Background != "" {
		c.SetCheckboxBackgroundColor(gg.Hex(t.Colors.Background))
	}
	if t.Colors.CheckedFill != "" {
		c.SetCheckedFillColor(gg.Hex(t.Colors.CheckedFill))
	}
	if t.Colors.UncheckedFill != "" {
		c.SetUncheckedFillColor(gg.Hex(t.Colors.UncheckedFill))
	}
	return nil
}
