package ui

// Glyph dimensions in unscaled pixels.
const (
	fontWidth   = 5
	fontHeight  = 8
	arrowWidth  = 13
	arrowHeight = 16
	blockMWidth = 21
	iconWidth   = 13
)

// First and last character codes with a glyph.
const (
	firstChar = 32
	lastChar  = 132
)

// font is a 5x8 column-major font for codes 32 to 132, least significant bit at the top. Codes 123 to 132 hold
// ä ö ü { | } € → ← ° rather than ASCII.
var font = [lastChar - firstChar + 1][fontWidth]uint8{
	{0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x00, 0x00, 0x5F, 0x00, 0x00}, // !
	{0x00, 0x07, 0x00, 0x07, 0x00}, // "
	{0x14, 0x7F, 0x14, 0x7F, 0x14}, // #
	{0x24, 0x2A, 0x7F, 0x2A, 0x12}, // $
	{0x23, 0x13, 0x08, 0x64, 0x62}, // %
	{0x36, 0x49, 0x55, 0x22, 0x50}, // &
	{0x00, 0x05, 0x03, 0x00, 0x00}, // '
	{0x00, 0x1C, 0x22, 0x41, 0x00}, // (
	{0x00, 0x41, 0x22, 0x1C, 0x00}, // )
	{0x08, 0x2A, 0x1C, 0x2A, 0x08}, // *
	{0x08, 0x08, 0x3E, 0x08, 0x08}, // +
	{0x00, 0x50, 0x30, 0x00, 0x00}, // ,
	{0x08, 0x08, 0x08, 0x08, 0x08}, // -
	{0x00, 0x60, 0x60, 0x00, 0x00}, // .
	{0x20, 0x10, 0x08, 0x04, 0x02}, // /
	{0x3E, 0x51, 0x49, 0x45, 0x3E}, // 0
	{0x00, 0x42, 0x7F, 0x40, 0x00}, // 1
	{0x42, 0x61, 0x51, 0x49, 0x46}, // 2
	{0x21, 0x41, 0x45, 0x4B, 0x31}, // 3
	{0x18, 0x14, 0x12, 0x7F, 0x10}, // 4
	{0x27, 0x45, 0x45, 0x45, 0x39}, // 5
	{0x3C, 0x4A, 0x49, 0x49, 0x30}, // 6
	{0x01, 0x71, 0x09, 0x05, 0x03}, // 7
	{0x36, 0x49, 0x49, 0x49, 0x36}, // 8
	{0x06, 0x49, 0x49, 0x29, 0x1E}, // 9
	{0x00, 0x36, 0x36, 0x00, 0x00}, // :
	{0x00, 0x56, 0x36, 0x00, 0x00}, // ;
	{0x00, 0x08, 0x14, 0x22, 0x41}, // <
	{0x14, 0x14, 0x14, 0x14, 0x14}, // =
	{0x41, 0x22, 0x14, 0x08, 0x00}, // >
	{0x02, 0x01, 0x51, 0x09, 0x06}, // ?
	{0x32, 0x49, 0x79, 0x41, 0x3E}, // @
	{0x7E, 0x11, 0x11, 0x11, 0x7E}, // A
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // B
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // C
	{0x7F, 0x41, 0x41, 0x22, 0x1C}, // D
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // E
	{0x7F, 0x09, 0x09, 0x01, 0x01}, // F
	{0x3E, 0x41, 0x41, 0x51, 0x32}, // G
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // H
	{0x00, 0x41, 0x7F, 0x41, 0x00}, // I
	{0x20, 0x40, 0x41, 0x3F, 0x01}, // J
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // K
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // L
	{0x7F, 0x02, 0x04, 0x02, 0x7F}, // M
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // N
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // O
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // P
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // Q
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // R
	{0x46, 0x49, 0x49, 0x49, 0x31}, // S
	{0x01, 0x01, 0x7F, 0x01, 0x01}, // T
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // U
	{0x1F, 0x20, 0x40, 0x20, 0x1F}, // V
	{0x7F, 0x20, 0x18, 0x20, 0x7F}, // W
	{0x63, 0x14, 0x08, 0x14, 0x63}, // X
	{0x03, 0x04, 0x78, 0x04, 0x03}, // Y
	{0x61, 0x51, 0x49, 0x45, 0x43}, // Z
	{0x00, 0x00, 0x7F, 0x41, 0x41}, // [
	{0x02, 0x04, 0x08, 0x10, 0x20}, // \
	{0x41, 0x41, 0x7F, 0x00, 0x00}, // ]
	{0x04, 0x02, 0x01, 0x02, 0x04}, // ^
	{0x40, 0x40, 0x40, 0x40, 0x40}, // _
	{0x00, 0x01, 0x02, 0x04, 0x00}, // `
	{0x20, 0x54, 0x54, 0x54, 0x78}, // a
	{0x7F, 0x48, 0x44, 0x44, 0x38}, // b
	{0x38, 0x44, 0x44, 0x44, 0x20}, // c
	{0x38, 0x44, 0x44, 0x48, 0x7F}, // d
	{0x38, 0x54, 0x54, 0x54, 0x18}, // e
	{0x08, 0x7E, 0x09, 0x01, 0x02}, // f
	{0x08, 0x14, 0x54, 0x54, 0x3C}, // g
	{0x7F, 0x08, 0x04, 0x04, 0x78}, // h
	{0x00, 0x44, 0x7D, 0x40, 0x00}, // i
	{0x20, 0x40, 0x44, 0x3D, 0x00}, // j
	{0x00, 0x7F, 0x10, 0x28, 0x44}, // k
	{0x00, 0x41, 0x7F, 0x40, 0x00}, // l
	{0x7C, 0x04, 0x18, 0x04, 0x78}, // m
	{0x7C, 0x08, 0x04, 0x04, 0x78}, // n
	{0x38, 0x44, 0x44, 0x44, 0x38}, // o
	{0x7C, 0x14, 0x14, 0x14, 0x08}, // p
	{0x08, 0x14, 0x14, 0x18, 0x7C}, // q
	{0x7C, 0x08, 0x04, 0x04, 0x08}, // r
	{0x48, 0x54, 0x54, 0x54, 0x20}, // s
	{0x04, 0x3F, 0x44, 0x40, 0x20}, // t
	{0x3C, 0x40, 0x40, 0x20, 0x7C}, // u
	{0x1C, 0x20, 0x40, 0x20, 0x1C}, // v
	{0x3C, 0x40, 0x30, 0x40, 0x3C}, // w
	{0x44, 0x28, 0x10, 0x28, 0x44}, // x
	{0x0C, 0x50, 0x50, 0x50, 0x3C}, // y
	{0x44, 0x64, 0x54, 0x4C, 0x44}, // z
	{0x20, 0x55, 0x54, 0x55, 0x78}, // ä
	{0x3A, 0x44, 0x44, 0x3A, 0x00}, // ö
	{0x3A, 0x40, 0x40, 0x3A, 0x00}, // ü
	{0x00, 0x08, 0x36, 0x41, 0x00}, // {
	{0x00, 0x00, 0x7F, 0x00, 0x00}, // |
	{0x00, 0x41, 0x36, 0x08, 0x00}, // }
	{0x14, 0x3E, 0x55, 0x41, 0x22}, // €
	{0x08, 0x08, 0x2A, 0x1C, 0x08}, // →
	{0x08, 0x1C, 0x2A, 0x08, 0x08}, // ←
	{0x00, 0x00, 0x07, 0x05, 0x07}, // °
}


// blockM is the university logo drawn in the bottom-left corner of the home screen.
var blockM = [blockMWidth]uint16{
	0xF03C, 0xF03C, 0xFFFC,
	0xFFFC, 0xFFFC, 0xFFFC,
	0xFFF8, 0xF3F0, 0x07E0,
	0x0FC0, 0x1F80, 0x0FC0,
	0x07E0, 0xF3F0, 0xFFF8,
	0xFFFC, 0xFFFC, 0xFFFC,
	0xFFFC, 0xF03C, 0xF03C,
}

var settingsIcon = [iconWidth]uint16{
	0x0000, 0x1998, 0x1998, 0x1998, 0x1998,
	0x1998, 0x1998, 0x1998, 0x1998, 0x1998,
	0x1998, 0x1998, 0x0000,
}

// Arrow icon indexes, counter-clockwise from east.
const (
	ArrowE = iota
	ArrowNE
	ArrowN
	ArrowNW
	ArrowW
	ArrowSW
	ArrowS
	ArrowSE
)

var arrows = [8][arrowWidth]uint16{
	ArrowE: {
		0x0000, 0x07C0, 0x07C0, 0x07C0, 0x07C0,
		0x07C0, 0x3FF8, 0x1FF0, 0x0FE0, 0x07C0,
		0x0380, 0x0100, 0x0000,
	},
	ArrowNE: {
		0x0000, 0x0000, 0x0600, 0x0F10, 0x1FB0,
		0x1FF0, 0x0FF0, 0x07F0, 0x03F0, 0x07F0,
		0x0FF0, 0x0000, 0x0000,
	},
	ArrowN: {
		0x0000, 0x0100, 0x0180, 0x01C0, 0x3FE0,
		0x3FF0, 0x3FF8, 0x3FF0, 0x3FE0, 0x01C0,
		0x0180, 0x0100, 0x0000,
	},
	ArrowNW: {
		0x0000, 0x0000, 0x0FF0, 0x07F0, 0x03F0,
		0x07F0, 0x0FF0, 0x1FF0, 0x1FB0, 0x0F10,
		0x0600, 0x0000, 0x0000,
	},
	ArrowW: {
		0x0000, 0x0100, 0x0380, 0x07C0, 0x0FE0,
		0x1FF0, 0x3FF8, 0x07C0, 0x07C0, 0x07C0,
		0x07C0, 0x07C0, 0x0000,
	},
	ArrowSW: {
		0x0000, 0x0000, 0x1FE0, 0x1FC0, 0x1F80,
		0x1FC0, 0x1FE0, 0x1FF0, 0x1BF0, 0x11E0,
		0x00C0, 0x0000, 0x0000,
	},
	ArrowS: {
		0x0000, 0x0100, 0x0300, 0x0700, 0x0FF8,
		0x1FF8, 0x3FF8, 0x1FF8, 0x0FF8, 0x0700,
		0x0300, 0x0100, 0x0000,
	},
	ArrowSE: {
		0x0000, 0x0000, 0x0060, 0x08F0, 0x0DF8,
		0x0FF8, 0x0FF0, 0x0FE0, 0x0FC0, 0x0FE0,
		0x0FF0, 0x0000, 0x0000,
	},
}
