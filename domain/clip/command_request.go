package clip

// DefaultAudioCodec is the encoder used when extracting audio from a video clip
const DefaultAudioCodec = "libmp3lame"

// TrimRequest describes a single stream-copy trim
type TrimRequest struct {
	SourcePath string
	OutputPath string
	Offset     int
	Duration   int
}

// NewTrimRequest builds a trim of the request's source into outputPath
func (r *CutRequest) NewTrimRequest(outputPath string) *TrimRequest {
	duration := r.Duration
	if duration == 0 {
		duration = ClipDuration
	}
	return &TrimRequest{
		SourcePath: r.SourcePath,
		OutputPath: outputPath,
		Offset:     r.Offset,
		Duration:   duration,
	}
}

// AudioExtractionRequest describes the conversion of a video clip to audio
type AudioExtractionRequest struct {
	SourceVideoPath string
	OutputPath      string
	Codec           string
}

// NewAudioExtractionRequest creates a request, defaulting the codec to libmp3lame
func NewAudioExtractionRequest(sourceVideoPath, outputPath, codec string) *AudioExtractionRequest {
	if codec == "" {
		codec = DefaultAudioCodec
	}
	return &AudioExtractionRequest{
		SourceVideoPath: sourceVideoPath,
		OutputPath:      outputPath,
		Codec:           codec,
	}
}
