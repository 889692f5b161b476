package uielements

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned when a style name does not match any variant.
var ErrUnknownStyle = errors.New("uielements: unknown style")

// CheckmarkStyle specifies the glyph drawn inside a checked checkbox.
type CheckmarkStyle int

const (
	// CheckmarkSquare fills the whole glyph rectangle.
	CheckmarkSquare CheckmarkStyle = iota
	// CheckmarkCircle fills an ellipse inscribed in the glyph rectangle.
	CheckmarkCircle
	// CheckmarkCross strokes two diagonals forming an X.
	CheckmarkCross
	// CheckmarkTick strokes a three-point tick polyline.
	CheckmarkTick
)

// String returns the style name used in themes and log output.
func (s CheckmarkStyle) String() string {
	switch s {
	case CheckmarkSquare:
		return "square"
	case CheckmarkCircle:
		return "circle"
	case CheckmarkCross:
		return "cross"
	case CheckmarkTick:
		return "tick"
	default:
		return fmt.Sprintf("CheckmarkStyle(%d)", int(s))
	}
}

// ParseCheckmarkStyle converts a style name to its CheckmarkStyle.
func ParseCheckmarkStyle(name string) (CheckmarkStyle, error) {
	switch name {
	case "square":
		return CheckmarkSquare, nil
	case "circle":
		return CheckmarkCircle, nil
	case "cross":
		return CheckmarkCross, nil
	case "tick":
		return CheckmarkTick, nil
	default:
		return 0, fmt.Errorf("%w: checkmark style %q", ErrUnknownStyle, name)
	}
}

// BorderStyle specifies the outer shape of the control.
type BorderStyle int

const (
	// BorderSquare draws a rounded rectangle border.
	BorderSquare BorderStyle = iota
	// BorderCircle draws an inscribed ellipse border.
	BorderCircle
)

// String returns the style name used in themes and log output.
func (s BorderStyle) String() string {
	switch s {
	case BorderSquare:
		return "square"
	case BorderCircle:
		return "circle"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// ParseBorderStyle converts a style name to its BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "square":
		return BorderSquare, nil
	case "circle":
		return BorderCircle, nil
	default:
		return 0, fmt.Errorf("%w: border style %q", ErrUnknownStyle, name)
	}
}

// Defaults for the checkbox configuration surface.
const (
	// DefaultBorderLineWidth is the default border stroke width in pixels.
	DefaultBorderLineWidth = 2.0

	// DefaultCheckmarkSize is the default fraction of the control's bounds
	// occupied by the checkmark's bounding box. Valid values are in (0, 1].
	DefaultCheckmarkSize = 0.5

	// DefaultBorderCornerRadius is the default corner radius of the square
	// border variant.
	DefaultBorderCornerRadius = 0.0

	// DefaultIncreasedTouchRadius is the default margin added to the tappable
	// hit area beyond the visual bounds, in each direction.
	DefaultIncreasedTouchRadius = 5.0
)
