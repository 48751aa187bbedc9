package ffmpeg

import (
	"context"
	"fmt"

	"clip-cutter/domain/clip"
)

// Extractor implements clip.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		if path != "" {
			e.ffmpegPath = path
		}
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     NewExecCommandRunner(nil),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExtractArgs returns the ffmpeg arguments that drop video and encode audio
func ExtractArgs(req *clip.AudioExtractionRequest) []string {
	return []string{
		"-i", req.SourceVideoPath,
		"-vn", // No video
		"-c:a", req.Codec,
		outputArg(req.OutputPath),
	}
}

// Extract implements clip.AudioExtractor
func (e *Extractor) Extract(ctx context.Context, req *clip.AudioExtractionRequest) error {
	if err := e.runner.Run(ctx, e.ffmpegPath, ExtractArgs(req)...); err != nil {
		return fmt.Errorf("ffmpeg audio conversion failed: %w", classify(err))
	}
	return nil
}

// Ensure Extractor implements clip.AudioExtractor
var _ clip.AudioExtractor = (*Extractor)(nil)
