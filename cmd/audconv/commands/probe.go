// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ik5/audconv/decode"
	"github.com/ik5/audconv/internal/cli"
	"github.com/ik5/audconv/internal/config"
	"github.com/ik5/audconv/sniff"
)

var errProbeFailed = errors.New("probe failed")

func newProbeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe [files...]",
		Short: "Show what the decoders make of files",
		Long: `Sniff and decode each file without the synthetic fallback and print
the detected format, sample rate, channel count, frame count and duration.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			host := decode.NewDefaultHost(cfg.SampleRate)
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				p := probe(host, path)
				if p.Err != nil {
					failed++
				}
				fmt.Fprint(out, opts.styles.Probe(p))
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errProbeFailed, failed, len(args))
			}

			return nil
		},
	}
}

func probe(capability decode.Capability, path string) cli.Probe {
	p := cli.Probe{File: filepath.Base(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		p.Err = err
		return p
	}

	p.Detected = sniff.Detect(data)

	buf, err := capability.Decode(data, p.Detected)
	if err != nil {
		p.Err = err
		return p
	}

	p.SampleRate = buf.SampleRate
	p.Channels = buf.Channels()
	p.Frames = buf.Frames()
	p.Duration = buf.Duration()

	return p
}
