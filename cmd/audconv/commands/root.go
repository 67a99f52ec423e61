// SPDX-License-Identifier: EPL-2.0

// Package commands implements the audconv command tree.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/audconv/internal/cli"
)

// Version is set at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

type rootOptions struct {
	verbose    bool
	configPath string
	styles     cli.Styles
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{styles: cli.NewStyles(cli.DefaultTheme)}

	cmd := &cobra.Command{
		Use:   "audconv",
		Short: "Convert audio files locally",
		Long: `audconv - convert audio files between containers without leaving the machine.

Input formats are detected from file contents: WAV, FLAC and MP3 are
recognized; AIFF and Ogg Vorbis can be inspected with 'probe'. Output is
16-bit PCM WAV. Asking for flac or mp3 writes WAV with a warning.

Files that are recognized but cannot be decoded are replaced by a two
second 440 Hz tone unless --strict is given.

Examples:
  audconv convert -o out song.flac voice.mp3
  audconv convert -c audconv.yaml *.wav
  audconv probe recording.aiff`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(
		newConvertCmd(opts),
		newProbeCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
