// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
	"github.com/spf13/cobra"
)

func (a *App) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Print the format, length and levels of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			buf, format, err := audcut.DecodeFile(args[0])
			if err != nil {
				return err
			}

			printInfo(a.Stdout, format, buf)

			return nil
		},
	}
}

func printInfo(w io.Writer, format string, buf *audio.Buffer) {
	fmt.Fprintf(w, "format:      %s\n", format)
	fmt.Fprintf(w, "sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(w, "channels:    %d\n", buf.NumChannels())
	fmt.Fprintf(w, "frames:      %d\n", buf.Frames())
	fmt.Fprintf(w, "duration:    %s\n", buf.Duration())

	for c, l := range audio.Measure(buf) {
		fmt.Fprintf(w, "channel %d:   peak %.1f dBFS, rms %.1f dBFS\n", c, l.PeakDBFS(), l.RMSDBFS())
	}
}
