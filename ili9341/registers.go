package ili9341

// Level 1 commands, datasheet pp. 83-85
const (
	NOP       = 0x00 // No operation
	SWRESET   = 0x01 // Software reset
	RDDID     = 0x04 // Read display identification information
	RDDST     = 0x09 // Read display status
	RDDPM     = 0x0A // Read display power mode
	RDDMADCTL = 0x0B // Read display MADCTL
	RDDCOLMOD = 0x0C // Read display pixel format
	RDDIM     = 0x0D // Read display image format
	RDDSM     = 0x0E // Read display signal mode
	RDDSDR    = 0x0F // Read display self-diagnostic result
	SLPIN     = 0x10 // Enter sleep mode
	SLPOUT    = 0x11 // Sleep out
	PTLON     = 0x12 // Partial mode on
	NORON     = 0x13 // Normal display mode on
	INVOFF    = 0x20 // Display inversion off
	INVON     = 0x21 // Display inversion on
	GAMSET    = 0x26 // Gamma set
	DISPOFF   = 0x28 // Display off
	DISPON    = 0x29 // Display on
	CASET     = 0x2A // Column address set
	PASET     = 0x2B // Page address set
	RAMWR     = 0x2C // Memory write
	RGBSET    = 0x2D // Color set
	RAMRD     = 0x2E // Memory read
	PTLAR     = 0x30 // Partial area
	VSCRDEF   = 0x33 // Vertical scrolling definition
	TEOFF     = 0x34 // Tearing effect line off
	TEON      = 0x35 // Tearing effect line on
	MADCTL    = 0x36 // Memory access control
	VSCRSADD  = 0x37 // Vertical scrolling start address
	IDMOFF    = 0x38 // Idle mode off
	IDMON     = 0x39 // Idle mode on
	PIXSET    = 0x3A // Pixel format set
	RAMWRC    = 0x3C // Write memory continue
	RAMRDC    = 0x3E // Read memory continue
	WRDISBV   = 0x51 // Write display brightness
	RDDISBV   = 0x52 // Read display brightness
	WRCTRLD   = 0x53 // Write CTRL display
	RDCTRLD   = 0x54 // Read CTRL display
	WRCABC    = 0x55 // Write content adaptive brightness control
	RDCABC    = 0x56 // Read content adaptive brightness control
	WRCABCMIN = 0x5E // Write CABC minimum brightness
	RDCABCMIN = 0x5F // Read CABC minimum brightness
	RDID1     = 0xDA // Read ID1
	RDID2     = 0xDB // Read ID2
	RDID3     = 0xDC // Read ID3
)

// Level 2 commands, datasheet pp. 85-87
const (
	IFMODE  = 0xB0 // RGB interface signal control
	FRMCTR1 = 0xB1 // Frame control (normal mode)
	FRMCTR2 = 0xB2 // Frame control (idle mode)
	FRMCTR3 = 0xB3 // Frame control (partial mode)
	INVTR   = 0xB4 // Display inversion control
	PRCTR   = 0xB5 // Blanking porch control
	DISCTRL = 0xB6 // Display function control
	ETMOD   = 0xB7 // Entry mode set
	PWCTR1  = 0xC0 // Power control 1
	PWCTR2  = 0xC1 // Power control 2
	VMCTR1  = 0xC5 // VCOM control 1
	VMCTR2  = 0xC7 // VCOM control 2
	RDID4   = 0xD3 // Read ID4
	GMCTRP1 = 0xE0 // Positive gamma correction
	GMCTRN1 = 0xE1 // Negative gamma correction
	DGMCTR1 = 0xE2 // Digital gamma control 1
	DGMCTR2 = 0xE3 // Digital gamma control 2
	IFCTL   = 0xF6 // Interface control
)

// initCmds is the power-up sequence: command, parameter count, parameters. A zero command terminates it.
//
// MADCTL is never written (the 0x48 follows RDDMADCTL, which the panel ignores), so the panel stays in its reset
// orientation: x addresses pages and y addresses columns.
var initCmds = []byte{
	0xEF, 3, 0x03, 0x80, 0x02,
	0xCF, 3, 0x00, 0xC1, 0x30,
	0xED, 4, 0x64, 0x03, 0x12, 0x81,
	0xE8, 3, 0x85, 0x00, 0x78,
	0xCB, 5, 0x39, 0x2C, 0x00, 0x34, 0x02,
	0xF7, 1, 0x20,
	0xEA, 2, 0x00, 0x00,
	PWCTR1, 1, 0x23, // 4.60V
	PWCTR2, 1, 0x10,
	VMCTR1, 2, 0x3E, 0x28,
	VMCTR2, 1, 0x86,
	RDDMADCTL, 1, 0x48,
	VSCRSADD, 1, 0x00,
	PIXSET, 1, 0x55, // 16 bits per pixel
	FRMCTR1, 2, 0x00, 0x18,
	DISCTRL, 3, 0x08, 0x82, 0x27,
	0xF2, 1, 0x00, // 3 gamma control off
	GAMSET, 1, 0x01,
	GMCTRP1, 15, 0x0F, 0x31, 0x2B, 0x0C, 0x0E, 0x08, 0x4E, 0xF1, 0x37, 0x07, 0x10, 0x03, 0x0E, 0x09, 0x00,
	GMCTRN1, 15, 0x00, 0x0E, 0x14, 0x03, 0x11, 0x07, 0x31, 0xC1, 0x48, 0x08, 0x0F, 0x0C, 0x31, 0x36, 0x0F,
	SLPOUT, 1, 0x80,
	DISPON, 1, 0x80,
	0x00,
}
