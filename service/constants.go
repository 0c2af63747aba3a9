package service

import "time"

const (
	// 70% rule: max offer = ARV * MaxOfferRatio - rehab.
	MaxOfferRatio = 0.70

	// Score weights. Empirical, open to recalibration.
	ScoreMarginWeight = 400.0
	ScoreSpeedWeight  = 40.0
	MaxScore          = 100.0

	// Holding periods at or under this many months get the full speed factor.
	FastFlipMonths = 6
	// Holding periods above this many months are flagged as long.
	LongHoldMonths = 9

	MinHoldingMonths  = 1
	MaxHoldingMonths  = 120
	MaxClosingPct     = 0.2
	MaxDownPaymentPct = 1.0
	MaxInterestRate   = 1.0
	MaxPointsPct      = 0.2
	MaxDealAmount     = 1_000_000_000.0

	DefaultCacheTTL = 10 * time.Minute
)
