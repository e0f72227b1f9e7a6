package timex

import "time"

// PeriodFromHz returns the period in nanoseconds for a frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return 1_000_000_000 / uint64(freqHz)
}

// Ms converts a millisecond count to a time.Duration.
func Ms(ms uint32) time.Duration { return time.Duration(ms) * time.Millisecond }
