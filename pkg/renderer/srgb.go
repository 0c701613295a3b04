package renderer

import "math"

// LinearToSRGB converts a linear light intensity to an 8-bit display
// channel value using the approximate sRGB transfer curve
func LinearToSRGB(val float64) uint8 {
	v := math.Max(val, 0.0)
	v = math.Max(1.055*math.Pow(v, 0.41666667)-0.055, 0.0)
	scaled := int(v * 255.9)
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}
