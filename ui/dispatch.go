package ui

import (
	"context"
	"sync"

	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/stmpe610"
)

type Screen uint8

const (
	Home Screen = iota
	Settings
)

func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case Settings:
		return "settings"
	}
	return "unknown"
}

// target is the reference point of a touch control, in touch coordinates.
type target struct {
	x, y int16
}

// Home screen controls.
var (
	settingsButton = target{20 + blockMWidth, 20}
	clearButton    = target{panelWidth - 5*(fontWidth+1), 20}
)

// Settings screen controls.
var (
	fontUp         = target{171, 202}
	fontDown       = target{171, 18}
	arrowUp        = target{286, 202}
	arrowDown      = target{286, 18}
	brightnessUp   = target{56, 202}
	brightnessDown = target{56, 18}
	returnButton   = target{20, 220}
)

func hit(p stmpe610.Point, t target) bool {
	return p.Near(t.x, t.y)
}

// Dispatcher applies touch and link events to the screens. All of its methods must be called from the goroutine
// running Run, except Params.
type Dispatcher struct {
	r      *Renderer
	ctx    *Context
	screen Screen
	cur    Cursor

	mu       sync.Mutex
	snapshot Params
}

func NewDispatcher(r *Renderer) *Dispatcher {
	d := &Dispatcher{
		r:   r,
		ctx: r.Context(),
	}
	d.publish()
	return d
}

// Start draws the home screen with an empty text box.
func (d *Dispatcher) Start() error {
	d.screen = Home
	d.publish()
	err := d.r.DrawHome()
	if err != nil {
		return err
	}
	return d.r.ResetTextBox(&d.cur)
}

// Screen returns the active screen.
func (d *Dispatcher) Screen() Screen {
	return d.screen
}

// Cursor returns the text cursor position.
func (d *Dispatcher) Cursor() Cursor {
	return d.cur
}

// Params returns the parameters as of the last handled event. It is safe to call from any goroutine.
func (d *Dispatcher) Params() Params {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshot
}

func (d *Dispatcher) publish() {
	d.mu.Lock()
	d.snapshot = Params{
		Screen:     d.screen,
		Font:       d.ctx.Font,
		Arrow:      d.ctx.Arrow,
		Brightness: d.ctx.Brightness,
		Background: d.ctx.BG,
	}
	d.mu.Unlock()
}

// HandleTouch applies a touch to the active screen. Touches outside every control are ignored.
func (d *Dispatcher) HandleTouch(p stmpe610.Point) error {
	defer d.publish()
	if d.screen == Home {
		return d.touchHome(p)
	}
	return d.touchSettings(p)
}

func (d *Dispatcher) touchHome(p stmpe610.Point) error {
	switch {
	case hit(p, settingsButton):
		d.screen = Settings
		return d.r.DrawSettings()
	case hit(p, clearButton):
		return d.r.ResetTextBox(&d.cur)
	}
	return nil
}

func (d *Dispatcher) touchSettings(p stmpe610.Point) error {
	c, l := d.ctx, d.ctx.Limits
	switch {
	case hit(p, fontUp):
		return d.adjust(&c.Font, true, l.FontMin, l.FontMax, fontSlider)
	case hit(p, fontDown):
		return d.adjust(&c.Font, false, l.FontMin, l.FontMax, fontSlider)
	case hit(p, arrowUp):
		return d.adjust(&c.Arrow, true, l.ArrowMin, l.ArrowMax, arrowSlider)
	case hit(p, arrowDown):
		return d.adjust(&c.Arrow, false, l.ArrowMin, l.ArrowMax, arrowSlider)
	case hit(p, brightnessUp):
		return d.adjustBrightness(true)
	case hit(p, brightnessDown):
		return d.adjustBrightness(false)
	case hit(p, returnButton):
		c.CommitBrightness()
		d.screen = Home
		err := d.r.DrawHome()
		if err != nil {
			return err
		}
		return d.r.ResetTextBox(&d.cur)
	}
	return nil
}

func (d *Dispatcher) adjust(v *uint8, up bool, min, max uint8, slider int16) error {
	if !step(v, up, min, max) {
		return nil
	}
	return d.r.AdjustSlider(slider, *v, up)
}

func (d *Dispatcher) adjustBrightness(up bool) error {
	c, l := d.ctx, d.ctx.Limits
	level := c.Brightness
	if !step(&level, up, l.BrightnessMin, l.BrightnessMax) {
		return nil
	}
	c.SetBrightness(level)
	return d.r.AdjustSlider(brightnessSlider, level, up)
}

// HandleLink renders a link event on the home screen. Events arriving while the settings screen is shown are dropped.
func (d *Dispatcher) HandleLink(ev link.Event) error {
	if d.screen != Home {
		return nil
	}
	switch ev.Kind {
	case link.Text:
		return d.r.PrintString(&d.cur, ev.Text)
	case link.Arrow:
		return d.r.DrawArrow(int(ev.Index))
	}
	return nil
}

// Run handles queued events until ctx is done. Drawing errors are logged and do not stop the loop.
func (d *Dispatcher) Run(ctx context.Context, events *Events) error {
	for {
		var err error
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-events.touch:
			err = d.HandleTouch(p)
		case ev := <-events.link:
			err = d.HandleLink(ev)
		}
		if err != nil {
			println("ui:", err.Error())
		}
	}
}
