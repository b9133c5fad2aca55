package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/copperbi/coppergen/internal/db"
	"github.com/copperbi/coppergen/internal/exitcode"
	"github.com/copperbi/coppergen/internal/export"
	"github.com/copperbi/coppergen/internal/gen"
	"github.com/copperbi/coppergen/internal/logging"
)

var configFile string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset, export CSV/Parquet, and load the analytical store",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory for the raw CSV layer and Parquet export")
	f.IntVar(&cfg.Organizations, "organizations", cfg.Organizations, "Number of purchasing organizations")
	f.IntVar(&cfg.Networks, "networks", cfg.Networks, "Number of customer networks")
	f.IntVar(&cfg.ProductsPerCategory, "products-per-category", cfg.ProductsPerCategory, "Products generated in each device category")
	f.IntVar(&cfg.Contracts, "contracts", cfg.Contracts, "Number of contracts")
	f.IntVar(&cfg.Transactions, "transactions", cfg.Transactions, "Target transaction row count")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed; the same seed reproduces the same dataset")
	f.StringVar(&cfg.AsOf, "as-of", cfg.AsOf, "Reference date (YYYY-MM-DD) contract statuses are judged against")
	f.BoolVar(&cfg.CSVOnly, "csv-only", false, "Skip the analytical store load; write only CSV and Parquet")
	f.StringVar(&configFile, "config", "", "YAML config file for counts and status mix")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}

	var err error
	if cfg.CSVOnly {
		err = cfg.Validate()
	} else {
		err = cfg.ValidateWithDSN()
	}
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	ds, summary, err := gen.Build(&cfg, log)
	if err != nil {
		if pe, ok := err.(*gen.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("generation failed")
		} else {
			log.Error().Err(err).Msg("generation failed")
		}
		os.Exit(exitcode.ValidationError)
	}

	exportStart := time.Now()
	if err := export.WriteRaw(ds, cfg.OutDir); err != nil {
		log.Error().Err(err).Msg("raw CSV export failed")
		os.Exit(exitcode.ExportError)
	}
	if err := export.WriteTransactionsParquet(ds, cfg.OutDir); err != nil {
		log.Error().Err(err).Msg("parquet export failed")
		os.Exit(exitcode.ExportError)
	}
	summary.DurationExport = time.Since(exportStart)
	log.Info().Str("dir", cfg.OutDir).Str("duration", summary.DurationExport.String()).Msg("export complete")

	if !cfg.CSVOnly {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()

		loadStart := time.Now()
		if err := db.Load(ctx, pool, log, ds, summary); err != nil {
			log.Error().Err(err).Msg("analytical store load failed")
			os.Exit(exitcode.LoadError)
		}
		summary.DurationLoad = time.Since(loadStart)
	}
	summary.DurationTotal = summary.DurationGenerate + summary.DurationVerify +
		summary.DurationExport + summary.DurationLoad

	fmt.Printf("Generation complete: %d transactions across %d contracts, %d networks, %d facilities (%.1fs)\n",
		summary.Transactions, summary.Contracts, summary.IDNs, summary.Facilities,
		summary.DurationTotal.Seconds())
	return nil
}
