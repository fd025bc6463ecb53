package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modularhistory/histdate"
)

var renderCmd = &cobra.Command{
	Use:   "render <iso-datetime>...",
	Short: "Render stored date/time values",
	Long:  "Decodes ISO-8601 values as stored by the database and prints their label, era, precision and timeline position.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refYear := cfg.RefYear()
		for _, arg := range args {
			dt, err := histdate.ParseISO(arg)
			if err != nil {
				return eris.Wrapf(err, "render: %q", arg)
			}

			zap.L().Debug("rendering date",
				zap.String("input", arg),
				zap.Stringer("precision", dt.Precision()),
				zap.Stringer("era", dt.Era()),
			)
			writeDate(cmd.OutOrStdout(), dt, refYear)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func writeDate(w io.Writer, dt histdate.DateTime, refYear int) {
	fmt.Fprintf(w, "%s\n", dt)
	fmt.Fprintf(w, "  serialized: %s\n", dt.Serialize())
	fmt.Fprintf(w, "  year:       %s\n", dt.YearString())
	fmt.Fprintf(w, "  era:        %s\n", dt.Era())
	fmt.Fprintf(w, "  precision:  %s\n", dt.Precision())
	fmt.Fprintf(w, "  circa:      %t\n", dt.IsCirca())
	fmt.Fprintf(w, "  years BP:   %d\n", dt.YearBP(refYear))
	fmt.Fprintf(w, "  position:   %.4f\n", dt.TimelinePosition(refYear))
}
