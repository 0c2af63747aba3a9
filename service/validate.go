package service

import (
	"errors"
	"fmt"
	"math"

	"flip-advisor/domain"
)

// ErrInvalidDeal is wrapped by every validation failure.
var ErrInvalidDeal = errors.New("invalid deal")

// Validate rejects inputs outside the ranges the calculator is meant for.
// Compute itself tolerates any input; this is the boundary check.
func Validate(in domain.DealInputs) error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"purchase_price", in.PurchasePrice},
		{"arv", in.ARV},
		{"rehab_budget", in.RehabBudget},
		{"annual_taxes", in.AnnualTaxes},
		{"annual_insurance", in.AnnualInsurance},
		{"monthly_utilities", in.MonthlyUtilities},
		{"monthly_hoa", in.MonthlyHOA},
		{"monthly_misc", in.MonthlyMisc},
		{"permits_and_fees", in.PermitsAndFees},
		{"staging", in.Staging},
	}
	for _, a := range amounts {
		if err := checkRange(a.name, a.value, 0, MaxDealAmount); err != nil {
			return err
		}
	}

	if in.HoldingMonths < MinHoldingMonths {
		return fmt.Errorf("%w: holding_months must be at least %d, got %d", ErrInvalidDeal, MinHoldingMonths, in.HoldingMonths)
	}
	if in.HoldingMonths > MaxHoldingMonths {
		return fmt.Errorf("%w: holding_months exceeds the maximum of %d", ErrInvalidDeal, MaxHoldingMonths)
	}

	if err := checkRange("buy_closing_pct", in.BuyClosingPct, 0, MaxClosingPct); err != nil {
		return err
	}
	if err := checkRange("sell_closing_pct", in.SellClosingPct, 0, MaxClosingPct); err != nil {
		return err
	}

	if !in.UseFinancing {
		return nil
	}
	if err := checkRange("down_payment_pct", in.DownPaymentPct, 0, MaxDownPaymentPct); err != nil {
		return err
	}
	if err := checkRange("interest_rate_annual", in.InterestRateAnnual, 0, MaxInterestRate); err != nil {
		return err
	}
	return checkRange("points_pct", in.PointsPct, 0, MaxPointsPct)
}

func checkRange(name string, value, lo, hi float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidDeal, name)
	}
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s must be between %g and %g, got %g", ErrInvalidDeal, name, lo, hi, value)
	}
	return nil
}
