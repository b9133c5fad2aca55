package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/copperbi/coppergen/internal/model"
)

const factChannelDepth = 1024

// Load replaces the analytical store's contents with the dataset: inside
// a single transaction it drops and recreates every base table and view,
// COPY-loads each entity collection in dependency order, and records the
// run. A crash mid-load rolls back and leaves the previous store intact;
// re-running with the same seed is deterministic, never additive.
func Load(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, ds *model.Dataset, summary *model.RunSummary) error {
	start := time.Now()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin load transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Drop children before parents; views go with their tables via CASCADE.
	for i := len(model.TableNames) - 1; i >= 0; i-- {
		if _, err := tx.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", model.TableNames[i])); err != nil {
			return fmt.Errorf("drop table %s: %w", model.TableNames[i], err)
		}
	}

	if err := ApplyMigrations(ctx, tx, log); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}

	// Dimension tables are small enough to copy from memory.
	dims := []struct {
		table   string
		columns []string
		count   int
		values  func(i int) []any
	}{
		{"gpos", model.GPOColumns(), len(ds.GPOs), func(i int) []any { return ds.GPOs[i].CopyValues() }},
		{"idns", model.IDNColumns(), len(ds.IDNs), func(i int) []any { return ds.IDNs[i].CopyValues() }},
		{"facilities", model.FacilityColumns(), len(ds.Facilities), func(i int) []any { return ds.Facilities[i].CopyValues() }},
		{"products", model.ProductColumns(), len(ds.Products), func(i int) []any { return ds.Products[i].CopyValues() }},
		{"contracts", model.ContractColumns(), len(ds.Contracts), func(i int) []any { return ds.Contracts[i].CopyValues() }},
		{"rebate_programs", model.RebateProgramColumns(), len(ds.RebatePrograms), func(i int) []any { return ds.RebatePrograms[i].CopyValues() }},
	}
	for _, d := range dims {
		rows := make([][]any, d.count)
		for i := 0; i < d.count; i++ {
			rows[i] = d.values(i)
		}
		n, err := tx.CopyFrom(ctx, pgx.Identifier{d.table}, d.columns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("copy %s: %w", d.table, err)
		}
		log.Info().Str("table", d.table).Int64("rows", n).Msg("table loaded")
	}

	// The fact table streams through a channel-backed source.
	ch := make(chan []any, factChannelDepth)
	go func() {
		defer close(ch)
		for i := range ds.Transactions {
			select {
			case ch <- ds.Transactions[i].CopyValues():
			case <-ctx.Done():
				return
			}
		}
	}()
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"transactions"}, model.TransactionColumns(), NewChannelSource(ch))
	if err != nil {
		return fmt.Errorf("copy transactions: %w", err)
	}
	log.Info().Str("table", "transactions").Int64("rows", n).Msg("table loaded")

	runID, err := uuid.Parse(summary.RunID)
	if err != nil {
		return fmt.Errorf("parse run id: %w", err)
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO dataset_runs
			(run_id, seed, organizations, networks, facilities, products, contracts, rebate_programs, transactions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		runID, summary.Seed, summary.GPOs, summary.IDNs, summary.Facilities,
		summary.Products, summary.Contracts, summary.RebatePrograms, summary.Transactions,
	); err != nil {
		return fmt.Errorf("record dataset run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}

	log.Info().
		Str("run_id", summary.RunID).
		Str("duration", time.Since(start).String()).
		Msg("analytical store loaded")
	return nil
}
