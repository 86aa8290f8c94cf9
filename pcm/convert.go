// SPDX-License-Identifier: EPL-2.0

package pcm

// FloatToInt16 converts x to a signed 16-bit sample using asymmetric scaling.
func FloatToInt16(x float32) int16 {
	// NaN fails every comparison below, catch it first
	if x != x {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}

// FloatToInt16Symmetric converts x to a signed 16-bit sample, using 32767
// for both signs.
func FloatToInt16Symmetric(x float32) int16 {
	if x != x {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16s converts src with FloatToInt16 into a newly allocated slice.
func Int16s(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = FloatToInt16(x)
	}

	return out
}

// Int16sSymmetric converts src with FloatToInt16Symmetric into a newly
// allocated slice.
func Int16sSymmetric(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = FloatToInt16Symmetric(x)
	}

	return out
}
