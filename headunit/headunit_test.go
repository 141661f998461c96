package headunit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/localize"
)

type fakeMics struct {
	amp [4]int32
	err error
}

func (m *fakeMics) Sample(f *localize.Frame) error {
	if m.err != nil {
		return m.err
	}
	for ch := range f {
		for i := range f[ch] {
			v := m.amp[ch]
			if i%2 == 1 {
				v = -v
			}
			f[ch][i] = 100 + v
		}
	}
	return nil
}

type fakeMotor struct {
	slots [2]uint8
	goes  int
	err   error
}

func (m *fakeMotor) SetWaveform(slot, effect uint8) error {
	if m.err != nil {
		return m.err
	}
	m.slots[slot] = effect
	return nil
}

func (m *fakeMotor) Go() error {
	if m.err != nil {
		return m.err
	}
	m.goes++
	return nil
}

func newUnit(amp [4]int32) (*Unit, *fakeMics, [4]*fakeMotor, *bytes.Buffer) {
	mics := &fakeMics{amp: amp}
	var fakes [4]*fakeMotor
	var motors [4]Motor
	for i := range fakes {
		fakes[i] = &fakeMotor{}
		motors[i] = fakes[i]
	}
	var out bytes.Buffer
	return New(mics, motors, link.NewEncoder(&out)), mics, fakes, &out
}

func goes(motors [4]*fakeMotor) [4]int {
	var n [4]int
	for i, m := range motors {
		n[i] = m.goes
	}
	return n
}

func TestFacing(t *testing.T) {
	c := qt.New(t)
	c.Assert(Facing(0), qt.DeepEquals, []int{0})
	c.Assert(Facing(45), qt.DeepEquals, []int{0, 1})
	c.Assert(Facing(180), qt.DeepEquals, []int{2})
	c.Assert(Facing(315), qt.DeepEquals, []int{3, 0})
	c.Assert(Facing(localize.Undetermined), qt.HasLen, 0)
	c.Assert(Facing(30), qt.HasLen, 0)
}

func TestStepCardinal(t *testing.T) {
	c := qt.New(t)
	u, _, motors, out := newUnit([4]int32{10, 1, 1, 1})
	u.Configure(Config{Effect: 47})

	res, err := u.Step()
	c.Assert(err, qt.IsNil)
	c.Assert(res.Angle, qt.Equals, 0)
	c.Assert(res.Means[localize.A1], qt.Equals, 100.0)
	c.Assert(goes(motors), qt.Equals, [4]int{1, 0, 0, 0})
	c.Assert(motors[0].slots, qt.Equals, [2]uint8{47, 0})
	c.Assert(out.Bytes(), qt.DeepEquals, []byte{0x01})
}

func TestStepDiagonal(t *testing.T) {
	c := qt.New(t)
	u, _, motors, out := newUnit([4]int32{10, 5, 10, 5})

	res, err := u.Step()
	c.Assert(err, qt.IsNil)
	c.Assert(res.Angle, qt.Equals, 45)
	c.Assert(goes(motors), qt.Equals, [4]int{1, 1, 0, 0})
	c.Assert(motors[1].slots[0], qt.Equals, uint8(1))
	c.Assert(out.Bytes(), qt.DeepEquals, []byte{0x02})
}

func TestStepUndetermined(t *testing.T) {
	c := qt.New(t)
	u, _, motors, out := newUnit([4]int32{10, 10, 10, 10})

	res, err := u.Step()
	c.Assert(err, qt.IsNil)
	c.Assert(res.Determined(), qt.IsFalse)
	c.Assert(goes(motors), qt.Equals, [4]int{})
	c.Assert(out.Len(), qt.Equals, 0)
}

func TestStepMotorError(t *testing.T) {
	c := qt.New(t)
	u, _, motors, out := newUnit([4]int32{10, 5, 10, 5})
	motors[0].err = errors.New("nack")

	_, err := u.Step()
	c.Assert(err, qt.ErrorMatches, "nack")
	c.Assert(goes(motors), qt.Equals, [4]int{0, 1, 0, 0})
	c.Assert(out.Bytes(), qt.DeepEquals, []byte{0x02})
}

func TestStepSampleError(t *testing.T) {
	c := qt.New(t)
	u, mics, motors, out := newUnit([4]int32{10, 1, 1, 1})
	mics.err = errors.New("i2s overrun")

	res, err := u.Step()
	c.Assert(err, qt.ErrorMatches, "i2s overrun")
	c.Assert(res.Angle, qt.Equals, localize.Undetermined)
	c.Assert(goes(motors), qt.Equals, [4]int{})
	c.Assert(out.Len(), qt.Equals, 0)
}

func TestRunStops(t *testing.T) {
	c := qt.New(t)
	u, _, _, _ := newUnit([4]int32{10, 10, 10, 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Assert(u.Run(ctx), qt.Equals, context.Canceled)
}
