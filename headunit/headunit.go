// Package headunit ties the head unit together: each pass samples the microphones, estimates the direction of the
// loudest sound, buzzes the motors facing it and sends the direction to the wrist unit.
package headunit

import (
	"context"

	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/localize"
)

// Motor is a haptic motor controller. *drv2605.Device implements it.
type Motor interface {
	SetWaveform(slot, effect uint8) error
	Go() error
}

// Sampler fills a frame with one pass of microphone samples. sph0645.Array implements it.
type Sampler interface {
	Sample(f *localize.Frame) error
}

type Config struct {
	// Effect is the library effect played toward a sound. Defaults to 1, a strong click.
	Effect uint8
}

// Unit runs localization passes. Motors are indexed counter-clockwise from the one facing 0 degrees, 90 degrees apart.
type Unit struct {
	mics   Sampler
	motors [4]Motor
	enc    *link.Encoder
	effect uint8
	frame  localize.Frame
}

func New(mics Sampler, motors [4]Motor, enc *link.Encoder) *Unit {
	return &Unit{
		mics:   mics,
		motors: motors,
		enc:    enc,
		effect: 1,
	}
}

func (u *Unit) Configure(c Config) {
	if c.Effect == 0 {
		c.Effect = 1
	}
	u.effect = c.Effect
}

// Facing returns the motors facing angle: one for a cardinal direction, the two either side of a diagonal, none for
// Undetermined or an invalid angle.
func Facing(angle int) []int {
	if angle < 0 || angle >= 360 || angle%45 != 0 {
		return nil
	}
	i := angle / 90
	if angle%90 == 0 {
		return []int{i}
	}
	return []int{i, (i + 1) % 4}
}

// Step runs one pass. A motor error does not stop the other motors or the link write. The first error is returned.
func (u *Unit) Step() (localize.Result, error) {
	err := u.mics.Sample(&u.frame)
	if err != nil {
		return localize.Result{Angle: localize.Undetermined}, err
	}
	res := localize.Estimate(u.frame)

	var first error
	for _, i := range Facing(res.Angle) {
		err = u.buzz(u.motors[i])
		if err != nil && first == nil {
			first = err
		}
	}
	err = u.enc.WriteDirection(res.Angle)
	if err != nil && first == nil {
		first = err
	}
	return res, first
}

func (u *Unit) buzz(m Motor) error {
	err := m.SetWaveform(0, u.effect)
	if err != nil {
		return err
	}
	err = m.SetWaveform(1, 0)
	if err != nil {
		return err
	}
	return m.Go()
}

// Run steps until ctx is done. Errors are logged and do not stop the loop.
func (u *Unit) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		_, err := u.Step()
		if err != nil {
			println("headunit:", err.Error())
		}
	}
}
