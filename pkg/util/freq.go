package util

import "math"

// FrequencyRange returns the lowest and highest of freqs. With no input it
// returns (+Inf, -Inf).
func FrequencyRange(freqs ...float64) (low, high float64) {
	low = math.Inf(1)
	high = math.Inf(-1)

	for _, freq := range freqs {
		if freq < low {
			low = freq
		}
		if freq > high {
			high = freq
		}
	}

	return
}

// NyquistMargin is how far residual sits inside the first Nyquist zone of fs.
// Zero means the residual is exactly on the fs/2 edge.
func NyquistMargin(fs, residual float64) float64 {
	return fs/2 - math.Abs(residual)
}
