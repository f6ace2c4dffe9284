package game

import "math"

// Wave parameters for the soup surface. Two sine components with different
// spatial frequencies drifting in opposite temporal directions give the
// surface a rolling, non-repeating look.
const (
	primaryAmp     = 10.0
	primaryFreq    = 0.015
	primaryDrift   = 0.06
	secondaryAmp   = 6.0
	secondaryFreq  = 0.035
	secondaryDrift = 0.04
)

// Soup is the animated hazard surface covering the bottom of the world.
// The surface height is a pure function of position and frame, so collision
// checks, bubble retirement, and rendering all sample the same boundary
// without any shared state.
type Soup struct {
	Baseline float64
}

// HeightAt returns the y-coordinate of the surface at horizontal position x
// on the given frame. Smaller values are higher on screen; the result stays
// within Baseline plus or minus the combined wave amplitude.
func (s Soup) HeightAt(x float64, frame uint64) float64 {
	f := float64(frame)
	return s.Baseline +
		primaryAmp*math.Sin(primaryFreq*x+primaryDrift*f) +
		secondaryAmp*math.Sin(secondaryFreq*x-secondaryDrift*f)
}

// MaxAmplitude returns the largest possible surface excursion from the
// baseline. The renderer uses it to bound the band of rows the surface can
// occupy.
func (s Soup) MaxAmplitude() float64 {
	return primaryAmp + secondaryAmp
}
