package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"fxmacro/internal/app"
	"fxmacro/internal/feature"
	"fxmacro/internal/model"
	"fxmacro/internal/slogx"
)

var (
	barsProvider    string
	barsSymbol      string
	barsGranularity string
	barsFrom        string
	barsTo          string
	barsFeatures    bool
	barsSave        bool
)

var barsCmd = &cobra.Command{
	Use:   "bars",
	Short: "Fetch OHLC bars for one instrument and normalize them",
	Long: `Fetch OHLC(V) bars for one instrument over a date range from the selected
vendor, normalize them into the canonical schema and optionally derive
volatility features and save the packet to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := InitializeApp()
		if err != nil {
			return err
		}
		slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))

		providerName := barsProvider
		if providerName == "" {
			providerName = a.Config.MarketProvider
		}
		g, err := model.ParseGranularity(barsGranularity)
		if err != nil {
			return err
		}
		from, to, err := parseDateRange(barsFrom, barsTo)
		if err != nil {
			return err
		}

		dp, err := app.CreateMarketProvider(a.Config, providerName)
		if err != nil {
			return err
		}
		defer dp.Close()

		series, err := dp.FetchBars(cmd.Context(), barsSymbol, g, from, to)
		if err != nil {
			return err
		}

		first := series.Bars[0].Timestamp
		last := series.Bars[series.Len()-1].Timestamp
		fmt.Printf("%s [%s] %d bars, %s .. %s\n",
			series.Symbol, dp.GetName(), series.Len(),
			first.Format(time.RFC3339), last.Format(time.RFC3339))

		if barsFeatures {
			res, err := feature.Augment(series)
			if err != nil {
				return err
			}
			fmt.Printf("average volatility: %.6f\n", res.AverageVolatility)
			for _, b := range res.Bars {
				if b.Multiplier != nil && *b.Multiplier >= 2 {
					fmt.Printf("  spike %s close=%.5f multiplier=%.2f\n",
						b.Timestamp.Format(time.RFC3339), b.Close, *b.Multiplier)
				}
			}
		}

		if barsSave {
			if err := app.SaveBarsPacket(a.Config, a.Saver, series, from, to); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	barsCmd.Flags().StringVar(&barsProvider, "provider", "", "market data vendor: yahoo or polygon (default from MARKET_PROVIDER)")
	barsCmd.Flags().StringVar(&barsSymbol, "symbol", "", "instrument symbol, e.g. GBPUSD=X (yahoo) or USDGBP (polygon)")
	barsCmd.Flags().StringVar(&barsGranularity, "granularity", "minute", "bar size: minute, hour, day, week, month")
	barsCmd.Flags().StringVar(&barsFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	barsCmd.Flags().StringVar(&barsTo, "to", "", "end date (YYYY-MM-DD)")
	barsCmd.Flags().BoolVar(&barsFeatures, "features", false, "derive volatility features and report spikes")
	barsCmd.Flags().BoolVar(&barsSave, "save", false, "save the fetched packet under DATA_DIR")
	_ = barsCmd.MarkFlagRequired("symbol")
	_ = barsCmd.MarkFlagRequired("from")
	_ = barsCmd.MarkFlagRequired("to")
}
