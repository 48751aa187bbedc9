package clip

import (
	"errors"
	"fmt"
)

// Validation and execution errors
var (
	ErrFileNotFound      = errors.New("source file does not exist")
	ErrInvalidOffset     = errors.New("invalid offset")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExecution         = errors.New("failed to execute ffmpeg command")
	ErrToolFailed        = errors.New("ffmpeg command failed")
)

// CleanupError is returned when the audio was produced but the intermediate
// video clip could not be removed afterwards
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("failed to delete the intermediate video file '%s': %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
