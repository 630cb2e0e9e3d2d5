package pressure

import "time"

// timeRampWindow is the elapsed-session window over which the time factor
// grows linearly from 1.0 to timeRampCap.
const (
	timeRampWindow = 5 * time.Minute
	timeRampCap    = 2.0
)

// AdaptiveIntensity computes how strongly an active tactic should be
// rendered right now. It is recomputed continuously, independent of
// whether a new trigger fired.
//
// The base value from the configured level is boosted when the player is
// close to solving (progress bands), ramped with elapsed session time,
// scaled by the tier multiplier, and finally clamped to [0,1].
func AdaptiveIntensity(level IntensityLevel, progress float64, elapsed time.Duration, tierMultiplier float64) float64 {
	v := level.Base()

	switch {
	case progress >= 0.7 && progress <= 0.9:
		v *= 1.3
	case progress >= 0.5 && progress < 0.7:
		v *= 1.1
	}

	v *= timeFactor(elapsed)
	v *= tierMultiplier

	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// timeFactor grows linearly from 1.0 to timeRampCap over timeRampWindow.
func timeFactor(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 1.0
	}
	frac := float64(elapsed) / float64(timeRampWindow)
	if frac > 1 {
		frac = 1
	}
	return 1.0 + (timeRampCap-1.0)*frac
}
