// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/ik5/audcut"
	"github.com/ik5/audcut/clip"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/spf13/cobra"
)

type cutOptions struct {
	start     float64
	end       float64
	format    string
	output    string
	outputDir string
	mono      bool
	rate      int
	s3        bool
}

func (a *App) newCutCommand() *cobra.Command {
	opts := &cutOptions{}

	cmd := &cobra.Command{
		Use:   "cut <input>",
		Short: "Export a time range of an audio file as MP3 or WAV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCut(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&opts.start, "start", "s", 0, "Start of the selection in seconds")
	flags.Float64VarP(&opts.end, "end", "e", 0, "End of the selection in seconds (default end of file)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format, mp3 or wav (default from config)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file name (default cut.<format>)")
	flags.StringVarP(&opts.outputDir, "output-dir", "d", "", "Output directory (default from config)")
	flags.BoolVarP(&opts.mono, "mono", "m", false, "Mix all channels down to mono")
	flags.IntVarP(&opts.rate, "rate", "r", 0, "Resample to this rate in Hz")
	flags.BoolVar(&opts.s3, "s3", false, "Upload to the configured S3 bucket instead of the output directory")

	return cmd
}

func (a *App) runCut(cmd *cobra.Command, input string, opts *cutOptions) error {
	ctx := cmd.Context()

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger(a.Stderr)

	format, err := clip.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	buf, inFormat, err := audcut.DecodeFile(input)
	if err != nil {
		return err
	}

	logger.Debug("decoded input",
		slog.String("input", input),
		slog.String("format", inFormat),
		slog.Int("sample_rate", buf.SampleRate),
		slog.Int("channels", buf.NumChannels()),
		slog.Int("frames", buf.Frames()),
	)

	session, err := clip.NewSession(buf)
	if err != nil {
		return err
	}

	session.SetStart(opts.start)
	if flags.Changed("end") {
		session.SetEnd(opts.end)
	}

	rng, err := session.Range()
	if err != nil {
		return err
	}

	var exportOpts []clip.ExportOption
	if opts.mono {
		exportOpts = append(exportOpts, clip.WithMono())
	}
	if opts.rate > 0 {
		exportOpts = append(exportOpts, clip.WithSampleRate(opts.rate))
	}

	if target := targetRate(format, buf.SampleRate, opts.rate); target != buf.SampleRate {
		logger.Debug("resampling clip",
			slog.Int("from", buf.SampleRate),
			slog.Int("to", target),
		)
	}

	out, err := session.Export(format, exportOpts...)
	if err != nil {
		return err
	}

	sink, err := a.NewStorage(ctx, cfg, opts.s3)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	name := opts.output
	if name == "" {
		name = out.Filename()
	}

	location, err := sink.Save(ctx, name, out.MIMEType, bytes.NewReader(out.Data))
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}

	logger.Info("clip exported",
		slog.Int("start_frame", rng.Start),
		slog.Int("end_frame", rng.End),
		slog.Int("frames", rng.Frames()),
		slog.String("format", string(out.Format)),
		slog.Int("bytes", len(out.Data)),
		slog.String("location", location),
	)

	fmt.Fprintln(a.Stdout, location)

	return nil
}

// targetRate mirrors the rate Session.Export will encode at.
func targetRate(format clip.Format, srcRate, requested int) int {
	rate := srcRate
	if requested > 0 {
		rate = requested
	}

	if format == clip.FormatMP3 && !mp3.SupportedSampleRate(rate) {
		rate = mp3.NearestSampleRate(rate)
	}

	return rate
}
