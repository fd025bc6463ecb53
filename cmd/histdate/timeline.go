package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modularhistory/histdate/internal/config"
	"github.com/modularhistory/histdate/timeline"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Build and inspect timeline blobs",
}

var timelineBuildCmd = &cobra.Command{
	Use:   "build <entries.yaml> <out.tl>",
	Short: "Encode a YAML list of dated entries into a timeline blob",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "timeline build: read input")
		}

		data, err := buildTimeline(input, cfg)
		if err != nil {
			return err
		}

		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return eris.Wrap(err, "timeline build: write output")
		}

		zap.L().Info("timeline written",
			zap.String("path", args[1]),
			zap.String("size", humanize.Bytes(uint64(len(data)))),
			zap.String("compression", cfg.Timeline.Compression),
		)

		return nil
	},
}

var (
	showFrom float64
	showTo   float64
)

var timelineShowCmd = &cobra.Command{
	Use:   "show <file.tl>",
	Short: "Print the entries of a timeline blob in chronological order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "timeline show: read input")
		}

		tl, err := timeline.Decode(data)
		if err != nil {
			return eris.Wrap(err, "timeline show: decode")
		}

		zap.L().Debug("timeline decoded",
			zap.Int("entries", tl.Len()),
			zap.Int("reference_year", tl.ReferenceYear()),
			zap.Stringer("compression", tl.Compression()),
		)
		writeTimeline(cmd.OutOrStdout(), tl, showFrom, showTo)

		return nil
	},
}

func init() {
	timelineShowCmd.Flags().Float64Var(&showFrom, "from", math.Inf(-1), "earliest timeline position to print")
	timelineShowCmd.Flags().Float64Var(&showTo, "to", math.Inf(1), "latest timeline position to print")

	timelineCmd.AddCommand(timelineBuildCmd, timelineShowCmd)
	rootCmd.AddCommand(timelineCmd)
}

// buildTimeline encodes the YAML entries in input with the configured encoder settings.
func buildTimeline(input []byte, cfg *config.Config) ([]byte, error) {
	inputs, err := parseTimelineFile(input)
	if err != nil {
		return nil, err
	}

	comp, err := cfg.Timeline.CompressionType()
	if err != nil {
		return nil, err
	}

	opts := []timeline.EncoderOption{
		timeline.WithReferenceYear(cfg.RefYear()),
		timeline.WithCompression(comp),
	}
	if cfg.Timeline.BigEndian {
		opts = append(opts, timeline.WithBigEndian())
	}
	if cfg.Timeline.KeyNames {
		opts = append(opts, timeline.WithKeyNames())
	}

	enc, err := timeline.NewEncoder(opts...)
	if err != nil {
		return nil, eris.Wrap(err, "timeline build: configure encoder")
	}

	for _, in := range inputs {
		dt, err := in.DateTime()
		if err != nil {
			return nil, eris.Wrapf(err, "timeline build: entry %q", in.Key)
		}
		if err := enc.Add(in.Key, dt); err != nil {
			return nil, eris.Wrapf(err, "timeline build: entry %q", in.Key)
		}
	}

	data, err := enc.Finish()
	if err != nil {
		return nil, eris.Wrap(err, "timeline build: encode")
	}

	return data, nil
}

func writeTimeline(w io.Writer, tl timeline.Timeline, from, to float64) {
	fmt.Fprintf(w, "%s entries, reference year %d, %s compression\n",
		humanize.Comma(int64(tl.Len())), tl.ReferenceYear(), tl.Compression())

	for i, entry := range tl.Between(from, to) {
		name := entry.Key
		if name == "" {
			name = fmt.Sprintf("%016x", entry.ID)
		}
		fmt.Fprintf(w, "%4d  %-24s  %-28s  %.2f\n", i, name, entry.Date, entry.Position)
	}
}
