package slider

import (
	"errors"
	"fmt"
	"math"
)

const epsilon = 1e-9

var (
	// ErrInvalidRange is returned when min is not strictly below max.
	ErrInvalidRange = errors.New("slider: min must be less than max")
	// ErrInvalidStep is returned for a non-positive step.
	ErrInvalidStep = errors.New("slider: step must be positive")
)

// State holds the value and bounds of a slider.
type State struct {
	value float64
	min   float64
	max   float64
	step  float64
}

// NewState creates a state with a step of 1. The value is clamped into [min, max].
func NewState(value, min, max float64) (*State, error) {
	return NewStateWithStep(value, min, max, 1)
}

// NewStateWithStep creates a state with a custom step.
func NewStateWithStep(value, min, max, step float64) (*State, error) {
	if min >= max {
		return nil, fmt.Errorf("%w: min=%g max=%g", ErrInvalidRange, min, max)
	}

	if step <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}

	return &State{
		value: clamp(value, min, max),
		min:   min,
		max:   max,
		step:  step,
	}, nil
}

// DefaultState returns 0 in [0, 100].
func DefaultState() *State {
	return &State{min: 0, max: 100, step: 1}
}

func (s *State) Value() float64 { return s.value }
func (s *State) Min() float64 { return s.min }
func (s *State) Max() float64 { return s.max }
func (s *State) Step() float64 { return s.step }
func (s *State) Range() float64 { return s.max - s.min }

// SetValue sets the value, clamped into the bounds.
func (s *State) SetValue(v float64) {
	s.value = clamp(v, s.min, s.max)
}

// SetMin changes the lower bound and re-clamps the value.
func (s *State) SetMin(min float64) error {
	if min >= s.max {
		return fmt.Errorf("%w: min=%g max=%g", ErrInvalidRange, min, s.max)
	}

	s.min = min
	s.value = clamp(s.value, s.min, s.max)

	return nil
}

// SetMax changes the upper bound and re-clamps the value.
func (s *State) SetMax(max float64) error {
	if max <= s.min {
		return fmt.Errorf("%w: min=%g max=%g", ErrInvalidRange, s.min, max)
	}

	s.max = max
	s.value = clamp(s.value, s.min, s.max)

	return nil
}

func (s *State) SetStep(step float64) error {
	if step <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}

	s.step = step

	return nil
}

// Percentage returns the position of the value within the range, from 0 to 1.
func (s *State) Percentage() float64 {
	r := s.Range()
	if r < epsilon {
		return 0
	}

	return (s.value - s.min) / r
}

// SetPercentage sets the value from a fraction of the range.
func (s *State) SetPercentage(p float64) {
	p = clamp(p, 0, 1)
	s.value = s.min + p*s.Range()
}

func (s *State) Increase(delta float64) { s.SetValue(s.value + delta) }
func (s *State) Decrease(delta float64) { s.SetValue(s.value - delta) }
func (s *State) StepUp()                { s.Increase(s.step) }
func (s *State) StepDown()              { s.Decrease(s.step) }

// SetFromPosition maps a cell position on a bar of the given length to a value.
func (s *State) SetFromPosition(pos, length int) {
	if length == 0 {
		return
	}

	s.SetPercentage(float64(pos) / float64(length))
}

// Position maps the value to a cell position on a bar of the given length.
func (s *State) Position(length int) int {
	return int(math.Round(s.Percentage() * float64(length)))
}

func (s *State) IsAtMin() bool { return math.Abs(s.value-s.min) < epsilon }
func (s *State) IsAtMax() bool { return math.Abs(s.value-s.max) < epsilon }

// IsAtMiddle reports whether the value is within 10% of the range from its midpoint.
func (s *State) IsAtMiddle() bool {
	mid := s.min + s.Range()/2
	return math.Abs(s.value-mid) < s.Range()*0.1
}

func (s *State) IsLow() bool { return s.Percentage() < 0.33 }

func (s *State) IsMedium() bool {
	p := s.Percentage()
	return p >= 0.33 && p < 0.67
}

func (s *State) IsHigh() bool { return s.Percentage() >= 0.67 }

func (s *State) DistanceFromMin() float64 { return s.value - s.min }
func (s *State) DistanceFromMax() float64 { return s.max - s.value }

// ValueString formats the value with a fixed number of decimals.
func (s *State) ValueString(decimals int) string {
	return fmt.Sprintf("%.*f", decimals, s.value)
}

// PercentageString formats the percentage as a whole number, e.g. "50%".
func (s *State) PercentageString() string {
	return fmt.Sprintf("%.0f%%", s.Percentage()*100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
