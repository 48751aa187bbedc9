package clip

import (
	"context"
	"fmt"
	"io"

	"clip-cutter/domain/clip"

	"go.uber.org/zap"
)

// VideoResult reports the two steps of the video pipeline independently.
// Each step's outcome is also printed to the service output as it happens.
// A failed cut does not stop the extraction attempt, and a failed extraction
// does not change the cut's outcome.
type VideoResult struct {
	CutPath   string
	CutErr    error
	AudioPath string
	AudioErr  error
}

// Service coordinates clip cutting and audio extraction
type Service struct {
	trimmer     clip.Trimmer
	extractor   clip.AudioExtractor
	fileChecker clip.FileChecker
	fileRemover clip.FileRemover
	audioCodec  string
	logger      *zap.Logger
	output      io.Writer
}

// NewService creates a new clip Service
func NewService(
	trimmer clip.Trimmer,
	extractor clip.AudioExtractor,
	fileChecker clip.FileChecker,
	fileRemover clip.FileRemover,
	logger *zap.Logger,
	output io.Writer,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if output == nil {
		output = io.Discard
	}
	return &Service{
		trimmer:     trimmer,
		extractor:   extractor,
		fileChecker: fileChecker,
		fileRemover: fileRemover,
		audioCodec:  clip.DefaultAudioCodec,
		logger:      logger,
		output:      output,
	}
}

// CutVideo cuts the clip into <source>_out.mp4 and then always attempts to
// turn that clip into an MP3
func (s *Service) CutVideo(ctx context.Context, req *clip.CutRequest) *VideoResult {
	result := &VideoResult{CutPath: clip.IntermediateVideoPath(req.SourcePath)}

	s.logger.Debug("cutting video",
		zap.String("source", req.SourcePath),
		zap.Int("offset", req.Offset),
		zap.String("output", result.CutPath))

	result.CutErr = s.trimmer.Trim(ctx, req.NewTrimRequest(result.CutPath))
	if result.CutErr != nil {
		s.logger.Debug("video cut failed", zap.Error(result.CutErr))
		fmt.Fprintf(s.output, "Error: %v\n", result.CutErr)
	} else {
		fmt.Fprintf(s.output, "Video successfully cut and saved as '%s'\n", result.CutPath)
	}

	result.AudioPath, result.AudioErr = s.ExtractAudio(ctx, req.SourcePath)
	if result.AudioErr != nil {
		fmt.Fprintf(s.output, "Error: %v\n", result.AudioErr)
	} else {
		fmt.Fprintf(s.output, "Video successfully converted to audio (MP3) of %d secs\n", clip.ClipDuration)
	}
	return result
}

// ExtractAudio converts <source>_out.mp4 into the first free <source>.mp3
// name and removes the intermediate clip. On a conversion failure the
// intermediate clip is kept. If only the removal fails, the audio path is
// returned together with a *clip.CleanupError.
func (s *Service) ExtractAudio(ctx context.Context, sourcePath string) (string, error) {
	intermediate := clip.IntermediateVideoPath(sourcePath)
	outputPath := clip.ExtractedAudioPath(sourcePath, s.fileChecker)

	s.logger.Debug("extracting audio",
		zap.String("input", intermediate),
		zap.String("output", outputPath))

	req := clip.NewAudioExtractionRequest(intermediate, outputPath, s.audioCodec)
	if err := s.extractor.Extract(ctx, req); err != nil {
		return "", err
	}

	if err := s.fileRemover.Remove(intermediate); err != nil {
		s.logger.Debug("intermediate video not removed", zap.String("file", intermediate), zap.Error(err))
		return outputPath, &clip.CleanupError{Path: intermediate, Err: err}
	}
	s.logger.Debug("removed intermediate video", zap.String("file", intermediate))

	fmt.Fprintf(s.output, "Mp3 file %s successfully created\n", outputPath)
	return outputPath, nil
}

// CutAudio cuts the clip out of an MP3 into the first free name derived from
// the source (song_1.mp3, song_2.mp3, ...) and prints the outcome
func (s *Service) CutAudio(ctx context.Context, req *clip.CutRequest) (string, error) {
	outputPath := clip.TrimmedAudioPath(req.SourcePath, s.fileChecker)

	s.logger.Debug("cutting audio",
		zap.String("source", req.SourcePath),
		zap.Int("offset", req.Offset),
		zap.String("output", outputPath))

	if err := s.trimmer.Trim(ctx, req.NewTrimRequest(outputPath)); err != nil {
		fmt.Fprintf(s.output, "Error: %v\n", err)
		return "", err
	}
	fmt.Fprintf(s.output, "Audio successfully cut and saved as '%s'\n", outputPath)
	return outputPath, nil
}
