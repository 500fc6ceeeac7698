// sectorwatch — Indian stock-market news dashboard
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/sectorwatch/api"
	"github.com/seenimoa/sectorwatch/internal/analysis/extract"
	"github.com/seenimoa/sectorwatch/internal/config"
	"github.com/seenimoa/sectorwatch/internal/datasource"
	"github.com/seenimoa/sectorwatch/internal/logbuf"
	"github.com/seenimoa/sectorwatch/internal/refdata"
	"github.com/seenimoa/sectorwatch/internal/report"
	"github.com/seenimoa/sectorwatch/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sectorwatch",
	Short: "sectorwatch — Indian stock-market news dashboard",
	Long: `sectorwatch aggregates Indian financial news from RSS feeds,
tags articles with stock symbols, sectors, and sentiment, and serves
per-sector gainers/losers through an HTTP API with live updates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(sectorsCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sectorwatch %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.Version = version

		srv, err := api.NewServer(cfg)
		if err != nil {
			return fmt.Errorf("failed to build server: %w", err)
		}

		addr := cfg.API.Addr()
		fmt.Printf("🌐 Starting sectorwatch API server on %s\n", addr)
		fmt.Printf("   Market Status: %s\n", utils.MarketStatus())
		return srv.ListenAndServe(addr)
	},
}

// --- Fetch Command ---

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and tag news once, printing per-sector headlines",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		agg, _, err := buildAggregator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
		defer cancel()

		fmt.Printf("📰 Fetching %d feeds...\n", len(agg.Feeds()))
		articles, err := agg.FetchAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		sectors := make([]string, 0, len(articles))
		for sector := range articles {
			sectors = append(sectors, sector)
		}
		sort.Strings(sectors)

		fmt.Printf("\n%d articles across %d sectors\n", articles.Total(), len(sectors))
		for _, sector := range sectors {
			fmt.Printf("\n── %s (%d) ──\n", sector, len(articles[sector]))
			for i, a := range articles[sector] {
				if i >= limit {
					fmt.Printf("   ... and %d more\n", len(articles[sector])-limit)
					break
				}
				fmt.Printf("   [%s] %s\n", a.Sentiment, a.Title)
				fmt.Printf("        %s · %s\n", a.Source, a.Published)
			}
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().Int("limit", 5, "max headlines to print per sector")
}

// --- Sectors Command ---

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Fetch news and print per-sector gainers/losers",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, table, err := buildAggregator()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
		defer cancel()

		fmt.Printf("📰 Fetching %d feeds...\n", len(agg.Feeds()))
		articles, err := agg.FetchAll(ctx)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		builder := report.NewBuilder(table, logbuf.New(logbuf.DefaultCapacity))
		reports := builder.Build(articles)

		sectors := make([]string, 0, len(reports))
		for sector := range reports {
			sectors = append(sectors, sector)
		}
		sort.Strings(sectors)

		for _, sector := range sectors {
			rep := reports[sector]
			fmt.Printf("\n── %s ──\n", sector)
			for _, g := range rep.Gainers {
				fmt.Printf("   📈 %-12s +%d/-%d\n", g.Symbol, g.PositiveCount, g.NegativeCount)
			}
			for _, l := range rep.Losers {
				fmt.Printf("   📉 %-12s +%d/-%d\n", l.Symbol, l.PositiveCount, l.NegativeCount)
			}
			if len(rep.Gainers) == 0 && len(rep.Losers) == 0 {
				fmt.Println("   (no ranked stocks)")
			}
		}
		return nil
	},
}

// --- Sources Command ---

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the configured RSS feeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		feeds, err := cfg.News.Feeds()
		if err != nil {
			return err
		}
		fmt.Printf("%d feeds configured:\n", len(feeds))
		for _, f := range feeds {
			fmt.Printf("  %-28s %s\n", f.Name, f.URL)
		}
		return nil
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		feeds, err := cfg.News.Feeds()
		if err != nil {
			return err
		}

		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  sectorwatch — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:       %s (%s)\n", version, commit)
		fmt.Printf("  Market Status: %s\n", utils.MarketStatus())
		fmt.Printf("  Time (IST):    %s\n", utils.FormatDateTimeIST(utils.NowIST()))
		fmt.Println()
		fmt.Println("  Configuration:")
		fmt.Printf("    API Server:    %s\n", cfg.API.Addr())
		fmt.Printf("    Data Dir:      %s\n", cfg.Data.Dir)
		fmt.Printf("    RSS Feeds:     %d\n", len(feeds))
		fmt.Printf("    Companies:     %d\n", table.Len())
		fmt.Printf("    Cache TTL:     %ds\n", cfg.News.CacheTTLSec)
		fmt.Printf("    Freshness:     %dh\n", cfg.News.FreshnessHours)
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

// --- Helpers ---

func loadTable() (*refdata.Table, error) {
	if cfg.Data.CompanyCSV != "" {
		return refdata.LoadFile(cfg.Data.CompanyCSV)
	}
	return refdata.Load()
}

func buildAggregator() (*datasource.Aggregator, *refdata.Table, error) {
	table, err := loadTable()
	if err != nil {
		return nil, nil, fmt.Errorf("load company table: %w", err)
	}
	feeds, err := cfg.News.Feeds()
	if err != nil {
		return nil, nil, err
	}

	logs := logbuf.New(logbuf.DefaultCapacity)
	logs.SetEcho(true)

	return datasource.NewAggregator(extract.New(table), feeds, logs, cfg.News.FetchOptions()), table, nil
}
