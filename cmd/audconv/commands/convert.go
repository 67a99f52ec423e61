// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audconv"
	"github.com/ik5/audconv/convert"
	"github.com/ik5/audconv/internal/config"
)

var errConversionFailed = errors.New("conversion failed")

type convertFlags struct {
	target    string
	outputDir string
	strict    bool
	overwrite bool
	quiet     bool
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert files to a target format",
		Long: `Convert each file and write <name>.<ext> into the output directory.

The extension is that of the container actually written, so a file
converted with -t mp3 is written as <name>.wav. The command exits with an
error if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts.configPath, &flags)
			if err != nil {
				return err
			}

			return runConvert(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, cfg, flags.quiet, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.target, "target", "t", "wav", "target format (wav, flac, mp3)")
	f.StringVarP(&flags.outputDir, "output", "o", ".", "output directory")
	f.BoolVar(&flags.strict, "strict", false, "fail files that cannot be decoded instead of substituting a tone")
	f.BoolVar(&flags.overwrite, "overwrite", false, "replace existing output files")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "do not print progress")

	return cmd
}

// loadConfig reads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command, path string, flags *convertFlags) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("target") {
		cfg.Target = flags.target
	}
	if f.Changed("output") {
		cfg.OutputDir = flags.outputDir
	}
	if f.Changed("strict") {
		cfg.StrictDecode = flags.strict
	}
	if f.Changed("overwrite") {
		cfg.Overwrite = flags.overwrite
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runConvert(stdout, stderr io.Writer, opts *rootOptions, cfg *config.Config, quiet bool, paths []string) error {
	pipelineOpts := []convert.Option{
		convert.WithLogger(slog.Default()),
		convert.WithFallbackSeconds(cfg.FallbackSeconds),
	}
	if cfg.StrictDecode {
		pipelineOpts = append(pipelineOpts, convert.WithStrictDecode())
	}

	var observer convert.Observer
	if !quiet {
		observer = convert.ProgressFunc(func(e convert.ProgressEvent) {
			fmt.Fprintln(stderr, opts.styles.Progress(e))
		})
	}

	c := audconv.NewConverter(cfg.SampleRate, pipelineOpts...)
	outcomes := c.Convert(convert.Paths(paths...), cfg.TargetFormat(), observer)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Success() {
			failed++
			fmt.Fprintln(stdout, opts.styles.Outcome(o, ""))
			continue
		}

		path := filepath.Join(cfg.OutputDir, o.OutputName())
		if err := writeOutput(path, o.Output, cfg.Overwrite); err != nil {
			failed++
			fmt.Fprintln(stdout, opts.styles.Fail.Render("✗")+" "+err.Error())
			continue
		}
		fmt.Fprintln(stdout, opts.styles.Outcome(o, path))
	}

	fmt.Fprintln(stdout, opts.styles.Summary(outcomes))

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", errConversionFailed, failed, len(outcomes))
	}

	return nil
}

func writeOutput(path string, data []byte, overwrite bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s exists, use --overwrite to replace it", path)
		}
		return fmt.Errorf("write %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
