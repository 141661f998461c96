// Package bustest provides recording fakes of the tinygo.org/x/drivers bus interfaces for driver tests.
package bustest

import (
	"errors"
)

// ErrNotSelected is reported when an SPI transfer happens while chip select is high.
var ErrNotSelected = errors.New("bustest: transfer without chip select")

// Write is one WriteRegister (or register-addressed Tx) transaction.
type Write struct {
	Addr uint8
	Reg  uint8
	Data []byte
}

// I2C is a register-map fake. Reads of unset registers return zero.
type I2C struct {
	regs   map[uint16]uint8
	Writes []Write
	Reads  []uint8
	// Err, when set, fails every transaction.
	Err error
	// ReadHook, when set, supplies register values before the register map is consulted.
	ReadHook func(addr, reg uint8) (uint8, bool)
}

func NewI2C() *I2C {
	return &I2C{regs: make(map[uint16]uint8)}
}

func key(addr, reg uint8) uint16 {
	return uint16(addr)<<8 | uint16(reg)
}

// Set presets a register value.
func (b *I2C) Set(addr, reg, val uint8) {
	b.regs[key(addr, reg)] = val
}

// Get returns the current register value.
func (b *I2C) Get(addr, reg uint8) uint8 {
	return b.regs[key(addr, reg)]
}

func (b *I2C) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	if b.Err != nil {
		return b.Err
	}
	b.Reads = append(b.Reads, reg)
	for i := range buf {
		r := reg + uint8(i)
		if b.ReadHook != nil {
			if v, ok := b.ReadHook(addr, r); ok {
				buf[i] = v
				continue
			}
		}
		buf[i] = b.regs[key(addr, r)]
	}
	return nil
}

func (b *I2C) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	if b.Err != nil {
		return b.Err
	}
	data := make([]byte, len(buf))
	copy(data, buf)
	b.Writes = append(b.Writes, Write{Addr: addr, Reg: reg, Data: data})
	for i, v := range buf {
		b.regs[key(addr, reg+uint8(i))] = v
	}
	return nil
}

func (b *I2C) Tx(addr uint16, w, r []byte) error {
	if b.Err != nil {
		return b.Err
	}
	if len(w) == 0 {
		return nil
	}
	if len(w) > 1 {
		err := b.WriteRegister(uint8(addr), w[0], w[1:])
		if err != nil {
			return err
		}
	}
	if len(r) > 0 {
		return b.ReadRegister(uint8(addr), w[0], r)
	}
	return nil
}

// WritesTo returns the values written to reg, in order.
func (b *I2C) WritesTo(reg uint8) []uint8 {
	var vals []uint8
	for _, w := range b.Writes {
		if w.Reg == reg && len(w.Data) > 0 {
			vals = append(vals, w.Data[0])
		}
	}
	return vals
}

// Pin records the level of a GPIO output.
type Pin struct {
	High  bool
	Edges int
}

func (p *Pin) Set(high bool) {
	if p.High != high {
		p.Edges++
	}
	p.High = high
}

// Frame is one byte clocked out on the SPI bus together with the data/command line level.
type Frame struct {
	Command bool
	Data    byte
}

// SPI records every byte written while chip select is low.
type SPI struct {
	DC     *Pin
	CS     *Pin
	Frames []Frame
	Err    error
}

func NewSPI() *SPI {
	return &SPI{
		DC: &Pin{},
		CS: &Pin{High: true},
	}
}

func (s *SPI) Tx(w, r []byte) error {
	for _, b := range w {
		if _, err := s.Transfer(b); err != nil {
			return err
		}
	}
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (s *SPI) Transfer(b byte) (byte, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	if s.CS.High {
		return 0, ErrNotSelected
	}
	s.Frames = append(s.Frames, Frame{Command: !s.DC.High, Data: b})
	return 0, nil
}

// Commands returns the command bytes in the order they were sent.
func (s *SPI) Commands() []byte {
	var cmds []byte
	for _, f := range s.Frames {
		if f.Command {
			cmds = append(cmds, f.Data)
		}
	}
	return cmds
}

// Params returns the data bytes following the n-th (zero-based) occurrence of cmd.
func (s *SPI) Params(cmd byte, n int) []byte {
	var params []byte
	seen := -1
	in := false
	for _, f := range s.Frames {
		if f.Command {
			if in {
				break
			}
			if f.Data == cmd {
				seen++
				in = seen == n
			}
			continue
		}
		if in {
			params = append(params, f.Data)
		}
	}
	return params
}

// Reset drops recorded frames.
func (s *SPI) Reset() {
	s.Frames = s.Frames[:0]
}
