package resample

import (
	"fmt"
)

// ConfigError reports an invalid Resampler construction: a malformed
// axis, a dimensionality mismatch, or an output dimension which is too
// small.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// ShapeError reports a field array whose shape doesn't match the grid
// a Resampler was built for.
type ShapeError struct {
	msg string
}

func (e *ShapeError) Error() string { return e.msg }

func shapeErrorf(format string, args ...interface{}) *ShapeError {
	return &ShapeError{fmt.Sprintf(format, args...)}
}
