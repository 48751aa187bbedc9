package clip

import (
	"fmt"
	"path/filepath"
	"strings"
)

// intermediateSuffix is appended to the full source path to name the cut video
const intermediateSuffix = "_out.mp4"

// IntermediateVideoPath returns the name of the cut video clip, e.g.
// clip.mp4 -> clip.mp4_out.mp4. It is not disambiguated.
func IntermediateVideoPath(sourcePath string) string {
	return sourcePath + intermediateSuffix
}

// ExtractedAudioPath returns the first free name for audio extracted from a
// video source: clip.mp3, then clip_1.mp3, clip_2.mp3, ...
func ExtractedAudioPath(sourcePath string, checker FileChecker) string {
	base := trimExt(sourcePath, VideoExt)
	return AvailableName(base+AudioExt, base, AudioExt, checker)
}

// TrimmedAudioPath returns the first free name for a clip cut from an audio
// source. The first candidate is the source itself, so in practice the
// result is song_1.mp3, song_2.mp3, ...
func TrimmedAudioPath(sourcePath string, checker FileChecker) string {
	base := trimExt(sourcePath, filepath.Ext(sourcePath))
	return AvailableName(sourcePath, base, AudioExt, checker)
}

// AvailableName checks first, then base_1+ext, base_2+ext, ... and returns
// the first candidate that does not exist. The check is not atomic: another
// process can still create the file before it is written.
func AvailableName(first, base, ext string, checker FileChecker) string {
	name := first
	for n := 1; checker.Exists(name); n++ {
		name = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	return name
}

// trimExt removes ext from the end of path, ignoring case
func trimExt(path, ext string) string {
	if ext != "" && len(path) >= len(ext) && strings.EqualFold(path[len(path)-len(ext):], ext) {
		return path[:len(path)-len(ext)]
	}
	return path
}
