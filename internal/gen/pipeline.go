package gen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/copperbi/coppergen/internal/config"
	"github.com/copperbi/coppergen/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Build generates the full dataset in dependency order (organizations →
// networks → facilities → products → contracts → rebate programs →
// transactions) and verifies every invariant before returning. Both
// random sources are seeded from cfg.Seed and owned by this call; Build
// is safe to run repeatedly and deterministic per seed.
func Build(cfg *config.Config, log zerolog.Logger) (*model.Dataset, *model.RunSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, &PipelineError{Phase: "config", Err: err}
	}

	start := time.Now()
	r := rand.New(rand.NewSource(cfg.Seed))
	faker := gofakeit.New(uint64(cfg.Seed))

	ds := &model.Dataset{}

	log.Info().Int64("seed", cfg.Seed).Msg("starting generation")

	ds.GPOs = GenerateGPOs(r, faker, cfg.Organizations)
	ds.IDNs = GenerateIDNs(r, faker, ds.GPOs, cfg.Networks)
	ds.Facilities = GenerateFacilities(r, faker, ds.IDNs)
	log.Info().
		Int("gpos", len(ds.GPOs)).
		Int("idns", len(ds.IDNs)).
		Int("facilities", len(ds.Facilities)).
		Msg("hierarchy generated")

	ds.Products = GenerateProducts(r, cfg.ProductsPerCategory)
	log.Info().Int("products", len(ds.Products)).Msg("catalog generated")

	ds.Contracts = GenerateContracts(r, ds.IDNs, cfg.Contracts, cfg.AsOfTime(), cfg.Mix)
	ds.RebatePrograms = GenerateRebatePrograms(r, ds.Contracts)
	log.Info().
		Int("contracts", len(ds.Contracts)).
		Int("rebate_programs", len(ds.RebatePrograms)).
		Msg("contracts generated")

	txns, err := GenerateTransactions(r, ds, cfg.Transactions, cfg.AsOfTime())
	if err != nil {
		return nil, nil, &PipelineError{Phase: "transactions", Err: err}
	}
	ds.Transactions = txns
	genDur := time.Since(start)
	log.Info().
		Int("transactions", len(ds.Transactions)).
		Str("duration", genDur.String()).
		Msg("transactions generated")

	verifyStart := time.Now()
	if err := Verify(ds); err != nil {
		return nil, nil, &PipelineError{Phase: "verify", Err: err}
	}
	verifyDur := time.Since(verifyStart)
	log.Info().Str("duration", verifyDur.String()).Msg("invariants verified")

	summary := &model.RunSummary{
		RunID:            uuid.New().String(),
		Seed:             cfg.Seed,
		GPOs:             len(ds.GPOs),
		IDNs:             len(ds.IDNs),
		Facilities:       len(ds.Facilities),
		Products:         len(ds.Products),
		Contracts:        len(ds.Contracts),
		RebatePrograms:   len(ds.RebatePrograms),
		Transactions:     len(ds.Transactions),
		DurationGenerate: genDur,
		DurationVerify:   verifyDur,
		DurationTotal:    time.Since(start),
	}
	return ds, summary, nil
}
