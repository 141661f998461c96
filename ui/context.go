package ui

// Default colors.
const (
	Black = 0x0000
	White = 0xFFFF
)

// Limits bounds the adjustable parameters.
type Limits struct {
	FontMin, FontMax             uint8
	ArrowMin, ArrowMax           uint8
	BrightnessMin, BrightnessMax uint8
}

// DefaultLimits lets every parameter range over 1 to 8.
var DefaultLimits = Limits{
	FontMin:       1,
	FontMax:       8,
	ArrowMin:      1,
	ArrowMax:      8,
	BrightnessMin: 1,
	BrightnessMax: 8,
}

// Context holds the display parameters shared by every screen. It is owned by the Dispatcher.
type Context struct {
	Font       uint8
	Arrow      uint8
	Brightness uint8
	FG         uint16
	BG         uint16
	Limits     Limits

	// pending is the background color for the current brightness, applied by CommitBrightness.
	pending  uint16
	modified bool
}

// NewContext returns the power-up parameters: smallest font and arrow, full brightness, black on white.
func NewContext() *Context {
	return &Context{
		Font:       1,
		Arrow:      1,
		Brightness: 8,
		FG:         Black,
		BG:         White,
		Limits:     DefaultLimits,
		pending:    White,
	}
}

// BrightnessColor is the background color for a brightness level, dimming white by one step per level below 8.
func BrightnessColor(level uint8) uint16 {
	if level >= 8 {
		return White
	}
	return White - 0x2104*uint16(8-level)
}

// SetBrightness changes the brightness level. The background only changes on CommitBrightness.
func (c *Context) SetBrightness(level uint8) {
	c.Brightness = level
	c.pending = BrightnessColor(level)
	c.modified = true
}

// Pending returns the background color CommitBrightness would apply.
func (c *Context) Pending() uint16 {
	if !c.modified {
		return c.BG
	}
	return c.pending
}

// CommitBrightness applies a brightness change made since the last commit and reports whether there was one.
func (c *Context) CommitBrightness() bool {
	if !c.modified {
		return false
	}
	c.BG = c.pending
	c.modified = false
	return true
}

// step moves v by one in the given direction within [min, max] and reports whether it changed.
func step(v *uint8, up bool, min, max uint8) bool {
	if up {
		if *v >= max {
			return false
		}
		*v++
		return true
	}
	if *v <= min {
		return false
	}
	*v--
	return true
}

// Params is a snapshot of the parameters and the active screen.
type Params struct {
	Screen     Screen
	Font       uint8
	Arrow      uint8
	Brightness uint8
	Background uint16
}
