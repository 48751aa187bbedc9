//go:build integration

package steps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"clip-cutter/cmd"
	"clip-cutter/infrastructure/ffmpeg"

	"github.com/cucumber/godog"
)

// mockRunner records ffmpeg invocations and creates their output files
type mockRunner struct {
	calls    [][]string
	failures map[int]int // call number (1-based) -> exit status
	fs       *mockFileSystem
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	m.calls = append(m.calls, args)
	if code, ok := m.failures[len(m.calls)]; ok {
		return &ffmpeg.ExitError{Code: code}
	}
	if len(args) > 0 {
		m.fs.existingFiles[args[len(args)-1]] = true
	}
	return nil
}

// mockFileSystem simulates file existence and removal
type mockFileSystem struct {
	existingFiles map[string]bool
	removeErr     error
}

func (m *mockFileSystem) Exists(path string) bool {
	return m.existingFiles[path]
}

func (m *mockFileSystem) Remove(path string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.existingFiles, path)
	return nil
}

// cutContext holds test state for cut scenarios
type cutContext struct {
	runner *mockRunner
	fs     *mockFileSystem
	output *bytes.Buffer
	err    error
}

// SharedCutContext is reset before each scenario via Before hook
var SharedCutContext *cutContext

func getCutContext() *cutContext {
	return SharedCutContext
}

func InitializeCutScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		fs := &mockFileSystem{existingFiles: make(map[string]bool)}
		SharedCutContext = &cutContext{
			runner: &mockRunner{failures: make(map[int]int), fs: fs},
			fs:     fs,
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedCutContext = nil
		return c, nil
	})

	ctx.Step(`^a media file at "([^"]*)"$`, aMediaFileAt)
	ctx.Step(`^ffmpeg exits with status (\d+) on call (\d+)$`, ffmpegExitsWithStatusOnCall)
	ctx.Step(`^removing files fails with "([^"]*)"$`, removingFilesFailsWith)
	ctx.Step(`^I run clip-cutter with "([^"]*)" and "([^"]*)"$`, iRunClipCutterWith)
	ctx.Step(`^I run clip-cutter with no arguments$`, iRunClipCutterWithNoArguments)
	ctx.Step(`^ffmpeg should have been called (\d+) times$`, ffmpegShouldHaveBeenCalledTimes)
	ctx.Step(`^ffmpeg call (\d+) should have arguments:$`, ffmpegCallShouldHaveArguments)
	ctx.Step(`^ffmpeg call (\d+) should write "([^"]*)"$`, ffmpegCallShouldWrite)
	ctx.Step(`^the file "([^"]*)" should exist$`, theFileShouldExist)
	ctx.Step(`^the file "([^"]*)" should not exist$`, theFileShouldNotExist)
	ctx.Step(`^the output should contain "([^"]*)"$`, theOutputShouldContain)
	ctx.Step(`^the output should be "([^"]*)"$`, theOutputShouldBe)
}

func aMediaFileAt(path string) error {
	getCutContext().fs.existingFiles[path] = true
	return nil
}

func ffmpegExitsWithStatusOnCall(code, call int) error {
	getCutContext().runner.failures[call] = code
	return nil
}

func removingFilesFailsWith(msg string) error {
	getCutContext().fs.removeErr = errors.New(msg)
	return nil
}

func runClipCutter(args ...string) error {
	c := getCutContext()
	deps := cmd.CutDependencies{
		Trimmer:     ffmpeg.NewTrimmer(ffmpeg.WithCommandRunner(c.runner)),
		Extractor:   ffmpeg.NewExtractor(ffmpeg.WithExtractorCommandRunner(c.runner)),
		FileChecker: c.fs,
		FileRemover: c.fs,
	}
	c.err = cmd.RunCutWithDependencies(context.Background(), deps, "clip-cutter", args, c.output)
	if c.err != nil {
		return fmt.Errorf("unexpected error: %v", c.err)
	}
	return nil
}

func iRunClipCutterWith(file, number string) error {
	return runClipCutter(file, number)
}

func iRunClipCutterWithNoArguments() error {
	return runClipCutter()
}

func ffmpegShouldHaveBeenCalledTimes(n int) error {
	c := getCutContext()
	if len(c.runner.calls) != n {
		return fmt.Errorf("expected %d ffmpeg calls, got %d: %v", n, len(c.runner.calls), c.runner.calls)
	}
	return nil
}

func callArgs(call int) ([]string, error) {
	c := getCutContext()
	if call < 1 || call > len(c.runner.calls) {
		return nil, fmt.Errorf("ffmpeg call %d was not made (%d calls)", call, len(c.runner.calls))
	}
	return c.runner.calls[call-1], nil
}

func ffmpegCallShouldHaveArguments(call int, table *godog.Table) error {
	args, err := callArgs(call)
	if err != nil {
		return err
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		expectedArg := row.Cells[0].Value
		found := false
		for _, arg := range args {
			if arg == expectedArg {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected argument %q not found in ffmpeg call: %v", expectedArg, args)
		}
	}
	return nil
}

func ffmpegCallShouldWrite(call int, path string) error {
	args, err := callArgs(call)
	if err != nil {
		return err
	}
	if got := args[len(args)-1]; got != path {
		return fmt.Errorf("expected ffmpeg call %d to write %q, got %q", call, path, got)
	}
	return nil
}

func theFileShouldExist(path string) error {
	if !getCutContext().fs.Exists(path) {
		return fmt.Errorf("expected %q to exist", path)
	}
	return nil
}

func theFileShouldNotExist(path string) error {
	if getCutContext().fs.Exists(path) {
		return fmt.Errorf("expected %q to be removed", path)
	}
	return nil
}

func theOutputShouldContain(text string) error {
	out := getCutContext().output.String()
	if !strings.Contains(out, text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, out)
	}
	return nil
}

func theOutputShouldBe(text string) error {
	out := strings.TrimSpace(getCutContext().output.String())
	if out != text {
		return fmt.Errorf("expected output %q, got %q", text, out)
	}
	return nil
}
