package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate of the game loop.
	TPS = 60
	// FixedStep is the simulated time of one update, in seconds.
	FixedStep = 1.0 / TPS
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
