// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/audconv/decode"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "audconv %s\n", Version)
			if opts.verbose {
				fmt.Fprintf(out, "  go:       %s\n", runtime.Version())

				formats := decode.DefaultRegistry().Formats()
				names := make([]string, len(formats))
				for i, f := range formats {
					names[i] = string(f)
				}
				fmt.Fprintf(out, "  decoders: %s\n", strings.Join(names, ", "))
			}
		},
	}
}
