package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	appclip "clip-cutter/application/clip"
	"clip-cutter/domain/clip"
	"clip-cutter/infrastructure/ffmpeg"
	"clip-cutter/infrastructure/filesystem"
	"clip-cutter/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CutDependencies are the ports the cut command runs against
type CutDependencies struct {
	Trimmer     clip.Trimmer
	Extractor   clip.AudioExtractor
	FileChecker clip.FileChecker
	FileRemover clip.FileRemover
	Logger      *zap.Logger
}

func runCut(cmd *cobra.Command, args []string) error {
	flagArgs, positional, help := splitArgs(args)
	if help {
		return cmd.Help()
	}
	if err := cmd.Flags().Parse(flagArgs); err != nil {
		return err
	}

	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(c.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Create dependencies using production implementations
	runner := ffmpeg.NewExecCommandRunner(logger)
	fs := filesystem.NewChecker()
	deps := CutDependencies{
		Trimmer:     ffmpeg.NewTrimmer(ffmpeg.WithFFmpegPath(c.FFmpegPath), ffmpeg.WithCommandRunner(runner)),
		Extractor:   ffmpeg.NewExtractor(ffmpeg.WithExtractorFFmpegPath(c.FFmpegPath), ffmpeg.WithExtractorCommandRunner(runner)),
		FileChecker: fs,
		FileRemover: fs,
		Logger:      logger,
	}

	return RunCutWithDependencies(cmd.Context(), deps, os.Args[0], positional, os.Stdout)
}

// RunCutWithDependencies runs the cut command with injected dependencies (for testing).
// Usage and validation problems are printed, not returned, so they never
// change the exit status.
func RunCutWithDependencies(
	ctx context.Context,
	deps CutDependencies,
	program string,
	args []string,
	output io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(args) != 2 {
		fmt.Fprintf(output, "Usage: %s <filename> <number>\n", program)
		return nil
	}
	filename := args[0]

	req, err := clip.NewCutRequest(filename, args[1], deps.FileChecker)
	if err != nil {
		logger.Debug("input rejected", zap.String("file", filename), zap.Error(err))
		switch {
		case errors.Is(err, clip.ErrFileNotFound):
			fmt.Fprintf(output, "Error: The file '%s' does not exist.\n", filename)
		case errors.Is(err, clip.ErrInvalidOffset):
			fmt.Fprintln(output, "Error: Invalid number provided.")
		case errors.Is(err, clip.ErrUnsupportedFormat):
			fmt.Fprintln(output, "Error: Unsupported file format. Supported formats: mp4, mp3")
		default:
			fmt.Fprintf(output, "Error: %v\n", err)
		}
		return nil
	}

	fmt.Fprintf(output, "Filename is: %s and number is %d\n", req.SourcePath, req.Offset)

	service := appclip.NewService(deps.Trimmer, deps.Extractor, deps.FileChecker, deps.FileRemover, logger, output)

	switch req.Kind {
	case clip.KindVideo:
		service.CutVideo(ctx, req)
	case clip.KindAudio:
		// Outcome already printed by the service
		_, _ = service.CutAudio(ctx, req)
	}
	return nil
}
