package fadeline

import "math"

const (
	// DefaultStep is how far the line moves per frame.
	DefaultStep = 0.01
	// animationPeriod is the accumulator range; the line sweeps once per
	// period, i.e. every 200 frames at DefaultStep.
	animationPeriod = 2.0
	// wrapEpsilon absorbs accumulated rounding so a value a hair below the
	// period wraps instead of mapping to a uniform of 1.0 in float32.
	wrapEpsilon = 1e-6
)

// Animation is the sawtooth accumulator behind the line's translation.
// The zero value is ready to use with DefaultStep.
type Animation struct {
	offset float64
	step   float64
}

// NewAnimation returns an Animation advancing by step per frame.
// A step that is not a positive finite number selects DefaultStep.
func NewAnimation(step float64) Animation {
	return Animation{step: validStep(step)}
}

// Advance moves one frame forward and returns the uniform value for it,
// which always lies in [-1, 1).
func (a *Animation) Advance() float32 {
	a.offset = math.Mod(a.offset+validStep(a.step), animationPeriod)
	if a.offset >= animationPeriod-wrapEpsilon || !(a.offset >= 0) {
		a.offset = 0
	}
	return a.Uniform()
}

// Offset returns the accumulator, in [0, 2).
func (a *Animation) Offset() float32 {
	return float32(a.offset)
}

// Uniform maps the accumulator to the translation submitted as uOffset.
func (a *Animation) Uniform() float32 {
	return float32(a.offset - 1)
}

func validStep(step float64) float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return DefaultStep
	}
	return step
}
