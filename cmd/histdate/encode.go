package main

import (
	"encoding/hex"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/modularhistory/histdate"
)

var (
	encodeInput  dateInput
	encodeFormat string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a date for storage",
	Long: "Builds a date from --year or --bce with an optional --month, --day or --season " +
		"and prints its stored form.",
	Example: "  histdate encode --bce 50000\n  histdate encode --year 1066 --month 10 --day 14 --format json",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dt, err := encodeInput.DateTime()
		if err != nil {
			return eris.Wrap(err, "encode")
		}

		out, err := formatDate(dt, encodeFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVar(&encodeInput.Year, "year", 0, "common era year")
	encodeCmd.Flags().Int64Var(&encodeInput.BCE, "bce", 0, "years before the common era")
	encodeCmd.Flags().IntVar(&encodeInput.Month, "month", 0, "month (1-12)")
	encodeCmd.Flags().IntVar(&encodeInput.Day, "day", 0, "day of month, requires --month")
	encodeCmd.Flags().StringVar(&encodeInput.Season, "season", "", "season: winter, spring, summer or fall")
	encodeCmd.Flags().StringVar(&encodeFormat, "format", "iso", "output format: iso, json or hex")
	encodeCmd.MarkFlagsMutuallyExclusive("year", "bce")
	encodeCmd.MarkFlagsOneRequired("year", "bce")
	rootCmd.AddCommand(encodeCmd)
}

func formatDate(dt histdate.DateTime, format string) (string, error) {
	switch format {
	case "iso":
		return dt.Serialize(), nil
	case "json":
		data, err := dt.MarshalJSON()
		if err != nil {
			return "", eris.Wrap(err, "encode: json")
		}

		return string(data), nil
	case "hex":
		data, err := dt.MarshalBinary()
		if err != nil {
			return "", eris.Wrap(err, "encode: binary")
		}

		return hex.EncodeToString(data), nil
	default:
		return "", eris.Errorf("encode: unknown format %q", format)
	}
}
