// Package preset defines display mode presets and parses them from user input
package preset

import (
	"fmt"
	"strconv"
	"strings"
)

// StopKeyword ends a multi-entry collection when typed on its own.
const StopKeyword = "stop"

// Validation failure reasons
const (
	ReasonMissingFields = "missing fields"
	ReasonBadResolution = "bad resolution format"
	ReasonBadFrequency  = "bad frequency"
)

// Preset is a named width/height/refresh-rate display mode.
type Preset struct {
	Width       int
	Height      int
	RefreshRate int
}

// ValidationError reports malformed preset input
type ValidationError struct {
	Reason string
	Input  string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// New builds a preset, rejecting non-positive values.
func New(width, height, refreshRate int) (Preset, error) {
	if width <= 0 || height <= 0 {
		return Preset{}, &ValidationError{
			Reason: ReasonBadResolution,
			Input:  fmt.Sprintf("%dx%d", width, height),
		}
	}
	if refreshRate <= 0 {
		return Preset{}, &ValidationError{
			Reason: ReasonBadFrequency,
			Input:  strconv.Itoa(refreshRate),
		}
	}
	return Preset{Width: width, Height: height, RefreshRate: refreshRate}, nil
}

// Name returns the display name, e.g. "1920x1080 144Hz".
func (p Preset) Name() string {
	return fmt.Sprintf("%dx%d %dHz", p.Width, p.Height, p.RefreshRate)
}

func (p Preset) String() string {
	return p.Name()
}

// IsStop reports whether raw is the stop keyword in any case.
func IsStop(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), StopKeyword)
}

// Parse reads "WIDTHxHEIGHT FREQUENCY". It returns stop=true when raw is the
// stop keyword, and a *ValidationError when the line is malformed.
func Parse(raw string) (p Preset, stop bool, err error) {
	if IsStop(raw) {
		return Preset{}, true, nil
	}

	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return Preset{}, false, &ValidationError{Reason: ReasonMissingFields, Input: raw}
	}

	dims := strings.Split(fields[0], "x")
	if len(dims) != 2 {
		return Preset{}, false, &ValidationError{Reason: ReasonBadResolution, Input: fields[0]}
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return Preset{}, false, &ValidationError{Reason: ReasonBadResolution, Input: fields[0]}
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return Preset{}, false, &ValidationError{Reason: ReasonBadResolution, Input: fields[0]}
	}

	freq, err := strconv.Atoi(fields[1])
	if err != nil {
		return Preset{}, false, &ValidationError{Reason: ReasonBadFrequency, Input: fields[1]}
	}

	p, err = New(width, height, freq)
	if err != nil {
		return Preset{}, false, err
	}
	return p, false, nil
}

// Find returns the index of the preset with the given display name, or -1.
func Find(presets []Preset, name string) int {
	name = strings.TrimSpace(name)
	for i, p := range presets {
		if strings.EqualFold(p.Name(), name) {
			return i
		}
	}
	return -1
}
