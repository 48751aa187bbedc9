package clip

import "context"

// Trimmer cuts a window out of a media file without re-encoding.
// This is a port that can be implemented by different infrastructure adapters
type Trimmer interface {
	Trim(ctx context.Context, req *TrimRequest) error
}

// AudioExtractor drops the video stream of a clip and encodes its audio
type AudioExtractor interface {
	Extract(ctx context.Context, req *AudioExtractionRequest) error
}

// FileChecker defines the interface for checking file existence
type FileChecker interface {
	// Exists returns true if anything exists at path
	Exists(path string) bool
}

// FileRemover deletes intermediate files
type FileRemover interface {
	Remove(path string) error
}
