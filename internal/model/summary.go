package model

import "time"

// RunSummary captures metrics from a single generation run.
type RunSummary struct {
	RunID string
	Seed  int64

	GPOs           int
	IDNs           int
	Facilities     int
	Products       int
	Contracts      int
	RebatePrograms int
	Transactions   int

	DurationGenerate time.Duration
	DurationVerify   time.Duration
	DurationExport   time.Duration
	DurationLoad     time.Duration
	DurationTotal    time.Duration
}
