// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToInt16 converts a sample in [-1,1] to 16-bit PCM, clamping values
// outside that range.
func FloatToInt16(x float64) int16 {
	return int16(FloatToPCM(x, 16))
}

// FloatToPCM converts a sample in [-1,1] to a signed integer of the given bit
// depth. Unknown depths are treated as 16-bit.
func FloatToPCM(x float64, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use max-1 for the positive end to avoid overflow
	return int(x * (PCMScale(bitDepth) - 1))
}

// PCMToFloat normalizes a signed integer sample of the given bit depth.
func PCMToFloat(v, bitDepth int) float64 {
	return float64(v) / PCMScale(bitDepth)
}

// PCMScale is the magnitude of the most negative value at bitDepth.
func PCMScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
