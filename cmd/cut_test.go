package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"clip-cutter/infrastructure/ffmpeg"
)

// recordingRunner records ffmpeg invocations and simulates their outputs
type recordingRunner struct {
	calls [][]string
	fs    *memFS
	errs  []error // returned per call, in order; nil entries succeed
}

func (r *recordingRunner) Run(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	idx := len(r.calls) - 1
	if idx < len(r.errs) && r.errs[idx] != nil {
		return r.errs[idx]
	}
	if r.fs != nil && len(args) > 0 {
		r.fs.files[args[len(args)-1]] = true
	}
	return nil
}

// memFS implements clip.FileChecker and clip.FileRemover in memory
type memFS struct {
	files     map[string]bool
	removed   []string
	removeErr error
}

func newMemFS(paths ...string) *memFS {
	m := &memFS{files: make(map[string]bool)}
	for _, p := range paths {
		m.files[p] = true
	}
	return m
}

func (m *memFS) Exists(path string) bool { return m.files[path] }

func (m *memFS) Remove(path string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.files, path)
	m.removed = append(m.removed, path)
	return nil
}

func newDeps(fs *memFS, runner *recordingRunner) CutDependencies {
	return CutDependencies{
		Trimmer:     ffmpeg.NewTrimmer(ffmpeg.WithCommandRunner(runner)),
		Extractor:   ffmpeg.NewExtractor(ffmpeg.WithExtractorCommandRunner(runner)),
		FileChecker: fs,
		FileRemover: fs,
	}
}

func run(t *testing.T, fs *memFS, runner *recordingRunner, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := RunCutWithDependencies(context.Background(), newDeps(fs, runner), "clip-cutter", args, &out); err != nil {
		t.Fatalf("RunCutWithDependencies() unexpected error: %v", err)
	}
	return out.String()
}

func TestRunCut_Usage(t *testing.T) {
	tests := [][]string{
		nil,
		{"clip.mp4"},
		{"clip.mp4", "10", "extra"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			runner := &recordingRunner{}
			out := run(t, newMemFS("clip.mp4"), runner, args...)

			if out != "Usage: clip-cutter <filename> <number>\n" {
				t.Errorf("output = %q", out)
			}
			if len(runner.calls) != 0 {
				t.Errorf("expected no ffmpeg calls, got %v", runner.calls)
			}
		})
	}
}

func TestRunCut_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing file",
			args: []string{"gone.mp4", "10"},
			want: "Error: The file 'gone.mp4' does not exist.\n",
		},
		{
			name: "missing file and bad number",
			args: []string{"gone.mp4", "abc"},
			want: "Error: The file 'gone.mp4' does not exist.\n",
		},
		{
			name: "bad number",
			args: []string{"clip.mp4", "abc"},
			want: "Error: Invalid number provided.\n",
		},
		{
			name: "bad number on mp3",
			args: []string{"song.mp3", "1.5"},
			want: "Error: Invalid number provided.\n",
		},
		{
			name: "unsupported format",
			args: []string{"notes.txt", "10"},
			want: "Error: Unsupported file format. Supported formats: mp4, mp3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{}
			out := run(t, newMemFS("clip.mp4", "song.mp3", "notes.txt"), runner, tt.args...)

			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if len(runner.calls) != 0 {
				t.Errorf("expected no ffmpeg calls, got %v", runner.calls)
			}
		})
	}
}

func TestRunCut_VideoPipeline(t *testing.T) {
	fs := newMemFS("clip.mp4")
	runner := &recordingRunner{fs: fs}

	out := run(t, fs, runner, "clip.mp4", "10")

	want := [][]string{
		{"ffmpeg", "-i", "clip.mp4", "-ss", "10", "-t", "30", "-c:v", "copy", "-c:a", "copy", "clip.mp4_out.mp4"},
		{"ffmpeg", "-i", "clip.mp4_out.mp4", "-vn", "-c:a", "libmp3lame", "clip.mp3"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("ffmpeg calls = %v, want %v", runner.calls, want)
	}
	if !reflect.DeepEqual(fs.removed, []string{"clip.mp4_out.mp4"}) {
		t.Errorf("removed = %v, want intermediate clip", fs.removed)
	}

	wantOut := "Filename is: clip.mp4 and number is 10\n" +
		"Video successfully cut and saved as 'clip.mp4_out.mp4'\n" +
		"Mp3 file clip.mp3 successfully created\n" +
		"Video successfully converted to audio (MP3) of 30 secs\n"
	if out != wantOut {
		t.Errorf("output = %q, want %q", out, wantOut)
	}
}

func TestRunCut_VideoPipeline_UppercaseExtension(t *testing.T) {
	fs := newMemFS("CLIP.MP4")
	runner := &recordingRunner{fs: fs}

	run(t, fs, runner, "CLIP.MP4", "0")

	if len(runner.calls) != 2 {
		t.Fatalf("expected 2 ffmpeg calls, got %d", len(runner.calls))
	}
	if got := runner.calls[1][len(runner.calls[1])-1]; got != "CLIP.mp3" {
		t.Errorf("audio output = %q, want %q", got, "CLIP.mp3")
	}
}

func TestRunCut_VideoPipeline_CutFailureStillExtracts(t *testing.T) {
	fs := newMemFS("clip.mp4")
	runner := &recordingRunner{fs: fs, errs: []error{&ffmpeg.ExitError{Code: 1}, &ffmpeg.ExitError{Code: 1}}}

	out := run(t, fs, runner, "clip.mp4", "10")

	if len(runner.calls) != 2 {
		t.Fatalf("expected extraction to be attempted, got %d calls", len(runner.calls))
	}
	if strings.Count(out, "Error: ") != 2 {
		t.Errorf("expected two independent error lines, got %q", out)
	}
	if len(fs.removed) != 0 {
		t.Errorf("nothing should be removed, removed %v", fs.removed)
	}
}

func TestRunCut_VideoPipeline_CleanupFailure(t *testing.T) {
	fs := newMemFS("clip.mp4")
	fs.removeErr = errors.New("permission denied")
	runner := &recordingRunner{fs: fs}

	out := run(t, fs, runner, "clip.mp4", "10")

	if !strings.Contains(out, "Error: failed to delete the intermediate video file 'clip.mp4_out.mp4': permission denied") {
		t.Errorf("output = %q, want cleanup error naming the file", out)
	}
	if !fs.Exists("clip.mp3") {
		t.Error("audio file should remain")
	}
}

func TestRunCut_AudioPipeline(t *testing.T) {
	fs := newMemFS("song.mp3")
	runner := &recordingRunner{fs: fs}

	out := run(t, fs, runner, "song.mp3", "5")

	want := [][]string{
		{"ffmpeg", "-i", "song.mp3", "-ss", "5", "-t", "30", "-c:v", "copy", "-c:a", "copy", "song_1.mp3"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("ffmpeg calls = %v, want %v", runner.calls, want)
	}
	wantOut := "Filename is: song.mp3 and number is 5\n" +
		"Audio successfully cut and saved as 'song_1.mp3'\n"
	if out != wantOut {
		t.Errorf("output = %q, want %q", out, wantOut)
	}
}

func TestRunCut_AudioPipeline_NegativeOffset(t *testing.T) {
	fs := newMemFS("song.mp3", "song_1.mp3")
	runner := &recordingRunner{fs: fs}

	run(t, fs, runner, "song.mp3", "-5")

	call := runner.calls[0]
	if call[4] != "-5" {
		t.Errorf("offset argument = %q, want -5", call[4])
	}
	if call[len(call)-1] != "song_2.mp3" {
		t.Errorf("output = %q, want song_2.mp3", call[len(call)-1])
	}
}

// executeRoot runs the root command with args and returns what it printed on stdout
func executeRoot(t *testing.T, args ...string) string {
	t.Helper()

	stdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()
	w.Close()
	os.Stdout = stdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatal(err)
	}
	if execErr != nil {
		t.Fatalf("Execute() unexpected error: %v", execErr)
	}
	return buf.String()
}

func TestRootCommand_NegativeOffsetIsPositional(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.mp4")
	t.Setenv("CLIPCUT_LOG_LEVEL", "")

	out := executeRoot(t, missing, "-5")

	if !strings.Contains(out, "does not exist") {
		t.Errorf("output = %q, want missing file message", out)
	}
}

func TestRootCommand_DashPrefixedFilename(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bare", args: []string{"-dash.mp3", "3"}},
		{name: "after separator", args: []string{"--", "-dash.mp3", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			wd, err := os.Getwd()
			if err != nil {
				t.Fatal(err)
			}
			if err := os.Chdir(dir); err != nil {
				t.Fatal(err)
			}
			t.Cleanup(func() { _ = os.Chdir(wd) })
			if err := os.WriteFile("-dash.mp3", []byte("data"), 0644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("CLIPCUT_LOG_LEVEL", "")
			t.Setenv("CLIPCUT_FFMPEG_PATH", "clip-cutter-no-such-ffmpeg-xyz")

			out := executeRoot(t, tt.args...)

			if !strings.Contains(out, "Filename is: -dash.mp3 and number is 3") {
				t.Errorf("output = %q, want the dash-prefixed file to be accepted", out)
			}
			if !strings.Contains(out, "Error: ffmpeg trim failed: failed to execute ffmpeg command") {
				t.Errorf("output = %q, want launch failure from the missing ffmpeg", out)
			}
		})
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantFlags      []string
		wantPositional []string
		wantHelp       bool
	}{
		{name: "positionals only", args: []string{"clip.mp4", "10"}, wantPositional: []string{"clip.mp4", "10"}},
		{name: "dash filename", args: []string{"-dash.mp3", "3"}, wantPositional: []string{"-dash.mp3", "3"}},
		{name: "negative offset", args: []string{"song.mp3", "-5"}, wantPositional: []string{"song.mp3", "-5"}},
		{
			name:           "separate flag value",
			args:           []string{"--ffmpeg", "/opt/ffmpeg", "clip.mp4", "1"},
			wantFlags:      []string{"--ffmpeg", "/opt/ffmpeg"},
			wantPositional: []string{"clip.mp4", "1"},
		},
		{
			name:           "inline flag value",
			args:           []string{"--log-level=debug", "clip.mp4", "1"},
			wantFlags:      []string{"--log-level=debug"},
			wantPositional: []string{"clip.mp4", "1"},
		},
		{
			name:           "flags after filename are positional",
			args:           []string{"clip.mp4", "--ffmpeg", "x"},
			wantPositional: []string{"clip.mp4", "--ffmpeg", "x"},
		},
		{
			name:           "separator",
			args:           []string{"--log-level", "info", "--", "-h", "3"},
			wantFlags:      []string{"--log-level", "info"},
			wantPositional: []string{"-h", "3"},
		},
		{name: "help", args: []string{"--help"}, wantHelp: true},
		{name: "flag without value", args: []string{"--ffmpeg"}, wantPositional: []string{"--ffmpeg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, positional, help := splitArgs(tt.args)

			if !reflect.DeepEqual(flags, tt.wantFlags) {
				t.Errorf("flags = %q, want %q", flags, tt.wantFlags)
			}
			if len(positional) != 0 || len(tt.wantPositional) != 0 {
				if !reflect.DeepEqual(positional, tt.wantPositional) {
					t.Errorf("positional = %q, want %q", positional, tt.wantPositional)
				}
			}
			if help != tt.wantHelp {
				t.Errorf("help = %v, want %v", help, tt.wantHelp)
			}
		})
	}
}

func TestRunCut_AudioPipeline_DashPrefixedSource(t *testing.T) {
	fs := newMemFS("-dash.mp3")
	runner := &recordingRunner{fs: fs}

	out := run(t, fs, runner, "-dash.mp3", "3")

	want := [][]string{
		{"ffmpeg", "-i", "-dash.mp3", "-ss", "3", "-t", "30", "-c:v", "copy", "-c:a", "copy", "./-dash_1.mp3"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("ffmpeg calls = %v, want %v", runner.calls, want)
	}
	if !strings.Contains(out, "Audio successfully cut and saved as '-dash_1.mp3'") {
		t.Errorf("output = %q", out)
	}
}
