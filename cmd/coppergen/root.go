package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/exitcode"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "coppergen",
	Short: "Synthetic MedTech pricing dataset generator",
	Long:  "Generates an internally consistent synthetic pricing dataset (GPOs, IDNs, facilities, products, contracts, rebates, transactions), exports it as CSV and Parquet, and loads it into Postgres with the analytical views the dashboard reads.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("COPPER_DB_URL"), "Postgres connection string (or set COPPER_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
