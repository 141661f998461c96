package drv2605

const DefaultAddress = 0x5A // I2C address for DRV2605

// Registers
const (
	Status     = 0x00 // Status register
	Mode       = 0x01 // Mode register
	RTPIn      = 0x02 // Real-time playback input register
	Library    = 0x03 // Waveform library selection register
	WaveSeq1   = 0x04 // Waveform sequence register 1, slots continue through 0x0B
	WaveSeq2   = 0x05 // Waveform sequence register 2
	WaveSeq8   = 0x0B // Waveform sequence register 8
	Go         = 0x0C // Go register
	Overdrive  = 0x0D // Overdrive time offset register
	SustainPos = 0x0E // Sustain time offset, positive register
	SustainNeg = 0x0F // Sustain time offset, negative register
	Break      = 0x10 // Brake time offset register
	AudioCtrl  = 0x11 // Audio-to-vibe control register
	AudioLevel = 0x12 // Audio-to-vibe minimum input level register
	AudioMax   = 0x13 // Audio-to-vibe maximum input level register
	AudioOMin  = 0x14 // Audio-to-vibe minimum output drive register
	AudioOMax  = 0x15 // Audio-to-vibe maximum output drive register
	RatedV     = 0x16 // Rated voltage register
	ClampV     = 0x17 // Overdrive clamp voltage register
	AutoCalCmp = 0x18 // Auto-calibration compensation result register
	AutoCalEMP = 0x19 // Auto-calibration back-EMF result register
	Feedback   = 0x1A // Feedback control register
	Control1   = 0x1B // Control1 register
	Control2   = 0x1C // Control2 register
	Control3   = 0x1D // Control3 register
	Control4   = 0x1E // Control4 register
	VBat       = 0x21 // Vbat voltage-monitor register
	LRAReson   = 0x22 // LRA resonance-period register
)

// OperatingMode is the value of the Mode register, datasheet section 7.4.2.
type OperatingMode uint8

const (
	ModeInternalTrigger OperatingMode = 0x00
	ModeExtTriggerEdge  OperatingMode = 0x01
	ModeExtTriggerLevel OperatingMode = 0x02
	ModePWMAnalog       OperatingMode = 0x03
	ModeAudioVibe       OperatingMode = 0x04
	ModeRealtime        OperatingMode = 0x05
	ModeDiagnostics     OperatingMode = 0x06
	ModeAutoCal         OperatingMode = 0x07
)

const (
	feedbackNERMLRA   = 0x80
	control3ERMOpenLp = 0x20
)
