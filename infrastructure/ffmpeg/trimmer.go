package ffmpeg

import (
	"context"
	"fmt"
	"strconv"

	"clip-cutter/domain/clip"
)

// Trimmer implements clip.Trimmer using ffmpeg
type Trimmer struct {
	ffmpegPath string
	runner     CommandRunner
}

// TrimmerOption is a functional option for configuring Trimmer
type TrimmerOption func(*Trimmer)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) TrimmerOption {
	return func(t *Trimmer) {
		if path != "" {
			t.ffmpegPath = path
		}
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) TrimmerOption {
	return func(t *Trimmer) {
		t.runner = runner
	}
}

// NewTrimmer creates a new FFmpeg-based trimmer
func NewTrimmer(opts ...TrimmerOption) *Trimmer {
	t := &Trimmer{
		ffmpegPath: "ffmpeg",
		runner:     NewExecCommandRunner(nil),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TrimArgs returns the ffmpeg arguments for a stream-copy trim.
// The copy flags are used for audio sources too: -c:a copy keeps the MP3
// frames untouched and -c:v copy carries embedded cover art along.
func TrimArgs(req *clip.TrimRequest) []string {
	return []string{
		"-i", req.SourcePath,
		"-ss", strconv.Itoa(req.Offset),
		"-t", strconv.Itoa(req.Duration),
		"-c:v", "copy",
		"-c:a", "copy",
		outputArg(req.OutputPath),
	}
}

// Trim implements clip.Trimmer
func (t *Trimmer) Trim(ctx context.Context, req *clip.TrimRequest) error {
	if err := t.runner.Run(ctx, t.ffmpegPath, TrimArgs(req)...); err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w", classify(err))
	}
	return nil
}

// Ensure Trimmer implements clip.Trimmer
var _ clip.Trimmer = (*Trimmer)(nil)
