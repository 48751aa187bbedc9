package clip

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ClipDuration is the length of every cut, in seconds
const ClipDuration = 30

// MediaKind identifies which pipeline handles a source file
type MediaKind int

const (
	KindUnknown MediaKind = iota
	KindVideo
	KindAudio
)

func (k MediaKind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Extensions recognised by DetectKind, compared case-insensitively
const (
	VideoExt = ".mp4"
	AudioExt = ".mp3"
)

// DetectKind maps a filename extension to its pipeline
func DetectKind(path string) (MediaKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case VideoExt:
		return KindVideo, nil
	case AudioExt:
		return KindAudio, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseOffset parses the start offset in whole seconds.
// Negative values and values past the end of the media are left for ffmpeg to judge.
func ParseOffset(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidOffset, s, err)
	}
	return int(n), nil
}

// CutRequest represents a request to cut a clip out of a media file
type CutRequest struct {
	SourcePath string
	Offset     int
	Duration   int
	Kind       MediaKind
}

// NewCutRequest validates the raw command-line values and builds a CutRequest.
// The existence check runs first so nothing else is inspected for a missing file.
func NewCutRequest(sourcePath, offset string, checker FileChecker) (*CutRequest, error) {
	if sourcePath == "" || !checker.Exists(sourcePath) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, sourcePath)
	}

	n, err := ParseOffset(offset)
	if err != nil {
		return nil, err
	}

	kind, err := DetectKind(sourcePath)
	if err != nil {
		return nil, err
	}

	return &CutRequest{
		SourcePath: sourcePath,
		Offset:     n,
		Duration:   ClipDuration,
		Kind:       kind,
	}, nil
}
