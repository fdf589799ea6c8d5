package liquid

import "errors"

var (
	// ErrUnknownFilter is returned when a filter name is not registered.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrInvalidPipeline is returned when a filter expression cannot be parsed.
	ErrInvalidPipeline = errors.New("invalid filter pipeline")

	// ErrUnknownPreset is returned when a preset name is not defined.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidPresets is returned when a presets document cannot be decoded.
	ErrInvalidPresets = errors.New("invalid presets")
)
