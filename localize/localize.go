// Package localize estimates the direction of a sound from four microphone channels arranged in two opposing pairs.
//
// Channels A1 and A2 face each other along one axis, B1 and B2 along the other. After removing each channel's DC
// offset, the estimator compares squared peak-to-peak ranges between the channels of each pair and picks one of eight
// directions, in degrees counter-clockwise with 0 facing A1 and 90 facing B1.
package localize

// Samples is the number of samples per channel in one pass.
const Samples = 1024

// Channel indexes a Frame.
type Channel int

const (
	A1 Channel = iota
	A2
	B1
	B2
)

// Frame is one pass of raw samples for all four channels.
type Frame [4][Samples]int32

// Undetermined is the angle reported when no direction matches.
const Undetermined = -1

// Squared range ratio thresholds.
const (
	t1 = 2.80 // dominant on one axis
	t2 = 1.15 // balanced on the other axis, weak variant
	t3 = 1.50 // diagonal
	t4 = 2.60 // balanced on the other axis
	t5 = 2.10 // dominant on one axis, weak variant
)

// Result is the outcome of one estimate.
type Result struct {
	// Angle is one of 0, 45, ..., 315, or Undetermined.
	Angle  int
	Ranges [4]float64
	Means  [4]float64
}

// Determined reports whether a direction was found.
func (r Result) Determined() bool {
	return r.Angle != Undetermined
}

// Estimate removes the DC offset of every channel and classifies the direction from the channel ranges.
func Estimate(f Frame) Result {
	var r Result
	for ch := range f {
		r.Means[ch] = mean(&f[ch])
		r.Ranges[ch] = peakToPeak(&f[ch], r.Means[ch])
	}
	r.Angle = classify(r.Ranges[A1], r.Ranges[A2], r.Ranges[B1], r.Ranges[B2])
	return r
}

func mean(s *[Samples]int32) float64 {
	sum := 0.0
	for _, v := range s {
		sum += float64(v)
	}
	return sum / Samples
}

func peakToPeak(s *[Samples]int32, dc float64) float64 {
	lo := float64(s[0]) - dc
	hi := lo
	for _, v := range s[1:] {
		x := float64(v) - dc
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return hi - lo
}

// ratio is a²/b². A silent denominator gives +Inf, two silent channels give NaN, which fails every comparison.
func ratio(a, b float64) float64 {
	return (a * a) / (b * b)
}

// classify checks the directions in a fixed order and returns the first match. The second clauses of the 0 and 90
// degree tests repeat those of 180 and 270, so they can never match on their own.
func classify(a1, a2, b1, b2 float64) int {
	switch {
	case ratio(a2, a1) > t1 && ratio(b2, b1) < t4 && ratio(b1, b2) < t4 ||
		ratio(a2, a1) > t5 && ratio(b2, b1) < t2 && ratio(b1, b2) < t2:
		return 180
	case ratio(a1, a2) > t1 && ratio(b2, b1) < t4 && ratio(b1, b2) < t4 ||
		ratio(a2, a1) > t5 && ratio(b2, b1) < t2 && ratio(b1, b2) < t2:
		return 0
	case ratio(b2, b1) > t1 && ratio(a2, a1) < t4 && ratio(a1, a2) < t4 ||
		ratio(b2, b1) > t5 && ratio(a2, a1) < t2 && ratio(a1, a2) < t2:
		return 270
	case ratio(b1, b2) > t1 && ratio(a2, a1) < t4 && ratio(a1, a2) < t4 ||
		ratio(b2, b1) > t5 && ratio(a2, a1) < t2 && ratio(a1, a2) < t2:
		return 90
	case ratio(a1, a2) > t3 && ratio(b1, b2) > t3:
		return 45
	case ratio(a2, a1) > t3 && ratio(b1, b2) > t3:
		return 135
	case ratio(a2, a1) > t3 && ratio(b2, b1) > t3:
		return 225
	case ratio(a1, a2) > t3 && ratio(b2, b1) > t3:
		return 315
	}
	return Undetermined
}
