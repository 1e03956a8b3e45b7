package algo

import "strings"

// StepSeparator joins presented steps.
const StepSeparator = " → "

// Directions turns a path into human-readable steps.
// A single-element path (start == end) yields only "You are at X".
func Directions(path []string) []string {
	steps := make([]string, 0, len(path))
	for i, name := range path {
		switch {
		case i == 0:
			steps = append(steps, "You are at "+name)
		case i == len(path)-1:
			steps = append(steps, "Then go to "+name+" (Destination reached)")
		default:
			steps = append(steps, "Then go to "+name)
		}
	}
	return steps
}

// FormatDirections joins steps for display.
func FormatDirections(steps []string) string {
	return strings.Join(steps, StepSeparator)
}
