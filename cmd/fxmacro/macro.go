package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"fxmacro/internal/app"
	"fxmacro/internal/slogx"
)

var (
	macroIndicator string
	macroFrom      string
	macroTo        string
	macroSave      bool
)

var macroCmd = &cobra.Command{
	Use:   "macro",
	Short: "Fetch one economic indicator series from FRED",
	Long: `Fetch one named economic indicator series over a date range from FRED,
normalize it into the canonical macro schema with period-over-period (and,
for configured indicators, year-over-year) changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := InitializeApp()
		if err != nil {
			return err
		}
		slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

		from, to, err := parseDateRange(macroFrom, macroTo)
		if err != nil {
			return err
		}

		dp, err := app.CreateMacroProvider(a.Config)
		if err != nil {
			return err
		}
		defer dp.Close()

		series, err := dp.FetchSeries(cmd.Context(), macroIndicator, from, to)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d observations, %s .. %s\n",
			series.Indicator, series.Len(),
			series.Observations[0].Date.Format(time.DateOnly),
			series.Observations[series.Len()-1].Date.Format(time.DateOnly))
		for _, o := range series.Observations {
			line := fmt.Sprintf("  %s  %10.3f", o.Date.Format(time.DateOnly), o.Value)
			if o.PeriodChange != nil {
				line += fmt.Sprintf("  %+.4f", *o.PeriodChange)
			}
			if o.YoYChange != nil {
				line += fmt.Sprintf("  %+.2f%% yoy", *o.YoYChange)
			}
			fmt.Println(line)
		}

		if macroSave {
			if err := app.SaveMacroPacket(a.Config, a.Saver, series, from, to); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	macroCmd.Flags().StringVar(&macroIndicator, "indicator", "", "FRED series code, e.g. CPIAUCSL, UNRATE, FEDFUNDS")
	macroCmd.Flags().StringVar(&macroFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	macroCmd.Flags().StringVar(&macroTo, "to", "", "end date (YYYY-MM-DD, inclusive)")
	macroCmd.Flags().BoolVar(&macroSave, "save", false, "save the fetched packet under DATA_DIR")
	_ = macroCmd.MarkFlagRequired("indicator")
	_ = macroCmd.MarkFlagRequired("from")
	_ = macroCmd.MarkFlagRequired("to")
}
