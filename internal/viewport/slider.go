package viewport

import "math"

// Slider range, in notches. Each wheel step moves one notch.
const (
	SliderMin = -10
	SliderMax = 10
)

// ClampSlider limits v to [SliderMin, SliderMax].
func ClampSlider(v float64) float64 {
	return math.Max(SliderMin, math.Min(SliderMax, v))
}

// SliderScale converts a slider value to a scale: 10^(v/10), so every ten
// notches multiply or divide the zoom by ten.
func SliderScale(v float64) float64 {
	return math.Pow(10, ClampSlider(v)/10)
}

// ScaleSlider is the inverse of SliderScale for scales inside the slider range.
func ScaleSlider(scale float64) float64 {
	return ClampSlider(10 * math.Log10(scale))
}
