package stmpe610

// DefaultAddress is the 7-bit address with the ADDR0 pin low (0x82 as an 8-bit write address).
const DefaultAddress = 0x41

// Registers
const (
	ChipID       = 0x00 // 16-bit chip ID, 0x0811
	SysCtrl1     = 0x03 // Reset control
	SysCtrl2     = 0x04 // Clock control
	IntCtrl      = 0x09 // Interrupt control
	IntEn        = 0x0A // Interrupt enable
	IntSta       = 0x0B // Interrupt status
	GPIOSetPin   = 0x10
	GPIOClrPin   = 0x11
	GPIODir      = 0x13
	GPIOAltFunct = 0x17
	ADCCtrl1     = 0x20 // ADC control
	ADCCtrl2     = 0x21 // ADC clock
	TSCCtrl      = 0x40 // Touchscreen controller setup
	TSCCfg       = 0x41 // Touchscreen controller configuration
	FIFOTh       = 0x4A // FIFO level to generate interrupt
	FIFOSta      = 0x4B // Current status of FIFO
	FIFOSize     = 0x4C // Current filled level of FIFO
	TSCDataX     = 0x4D
	TSCDataY     = 0x4F
	TSCFractionZ = 0x56
	TSCIDrive    = 0x58 // Touchscreen controller drive current
	TSCDataXYZ   = 0xD7 // Non auto-increment FIFO data port
)

// Register bits
const (
	SysCtrl1Reset = 0x02

	TSCCtrlEn      = 0x01
	TSCCtrlXYZ     = 0x00
	TSCCtrlXY      = 0x02
	TSCCtrlTouched = 0x80

	IntCtrlPolHigh = 0x04
	IntCtrlEdge    = 0x02
	IntCtrlEnable  = 0x01

	IntEnTouchDet = 0x01

	ADCCtrl1Bits10 = 0x00
	ADCCtrl1Bits12 = 0x08
	ADCCtrl2Clk6_5 = 0x02 // 6.5 MHz

	TSCCfg4Sample  = 0x80
	TSCCfgDelay1ms = 0x20
	TSCCfgSettle5  = 0x04 // 5 ms

	FIFOStaReset = 0x01
	FIFOStaEmpty = 0x20
	FIFOStaFull  = 0x40

	TSCIDrive50mA = 0x01
)

const chipVersion = 0x0811

// initRegs is written in order once the chip has been reset.
var initRegs = [...][2]uint8{
	{SysCtrl2, 0x00}, // all clocks on
	{TSCCtrl, TSCCtrlXYZ | TSCCtrlEn},
	{IntEn, IntEnTouchDet},
	{ADCCtrl1, ADCCtrl1Bits10 | 0x6<<4}, // 96 clock sample time
	{ADCCtrl2, ADCCtrl2Clk6_5},
	{TSCCfg, TSCCfg4Sample | TSCCfgDelay1ms | TSCCfgSettle5},
	{TSCFractionZ, 0x6},
	{FIFOTh, 1},
	{FIFOSta, FIFOStaReset},
	{FIFOSta, 0},
	{TSCIDrive, TSCIDrive50mA},
	{IntSta, 0xFF}, // clear all interrupts
	{IntCtrl, IntCtrlPolHigh | IntCtrlEnable},
}
