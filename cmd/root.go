package cmd

import (
	"fmt"
	"os"
	"strings"

	"clip-cutter/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	ffmpegPath string
	logLevel   string
)

// Flag parsing is done by splitArgs so that a filename starting with '-'
// is never mistaken for a flag.
var rootCmd = &cobra.Command{
	Use:   "clip-cutter [flags] <filename> <number>",
	Short: "Cut a 30-second clip out of an mp4 or mp3 file",
	Long: `clip-cutter cuts a 30-second clip starting <number> seconds into <filename>
using ffmpeg:

  - mp4: the clip is written to <filename>_out.mp4, converted to an MP3 next
    to the source and the intermediate clip is removed
  - mp3: the clip is written to <name>_1.mp3 (or the next free number)

Flags are only recognised before <filename>. Anything else, including
negative offsets and names starting with '-', is a positional argument.

Example:
  clip-cutter clip.mp4 10
  clip-cutter --ffmpeg /opt/ffmpeg/bin/ffmpeg song.mp3 -5
  clip-cutter -- -h.mp3 3`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runCut,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&ffmpegPath, config.FFmpegFlag, "", "ffmpeg executable (default \"ffmpeg\" from PATH, env CLIPCUT_FFMPEG_PATH)")
	rootCmd.Flags().StringVar(&logLevel, config.LogLevelFlag, "", "log level: debug, info, warn, error (default \"warn\", env CLIPCUT_LOG_LEVEL)")
}

// splitArgs consumes the known flags at the front of args and returns them
// separately from the positionals. It stops at "--" or at the first
// argument that is not one of our flags.
func splitArgs(args []string) (flagArgs, positional []string, help bool) {
	valueFlags := map[string]bool{
		"--" + config.FFmpegFlag:   true,
		"--" + config.LogLevelFlag: true,
	}

	i := 0
	for i < len(args) {
		arg := args[i]
		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case arg == "--":
			return flagArgs, args[i+1:], help
		case arg == "-h" || arg == "--help":
			help = true
			i++
		case valueFlags[name] && hasValue:
			flagArgs = append(flagArgs, arg)
			i++
		case valueFlags[name] && i+1 < len(args):
			flagArgs = append(flagArgs, arg, args[i+1])
			i += 2
		default:
			return flagArgs, args[i:], help
		}
	}
	return flagArgs, nil, help
}

// loadConfig resolves the configuration from the parsed flags and the environment
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return loader.Load()
}
