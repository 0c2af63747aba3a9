package service

import (
	"math"

	"flip-advisor/domain"
)

// safeDiv returns a/b, or exactly 0 when b is 0.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}

// Compute derives the deal metrics from the inputs. It has no side effects
// and never fails: every division goes through safeDiv.
func Compute(in domain.DealInputs) domain.DealMetrics {
	months := float64(in.HoldingMonths)

	buyClosingCost := in.PurchasePrice * in.BuyClosingPct
	sellClosingCost := in.ARV * in.SellClosingPct

	monthlyCarry := in.AnnualTaxes/12 +
		in.AnnualInsurance/12 +
		in.MonthlyUtilities +
		in.MonthlyHOA +
		in.MonthlyMisc
	holdingCostTotal := monthlyCarry * months

	var loanAmount, downPayment, financingCostTotal float64
	if in.UseFinancing {
		downPayment = in.PurchasePrice * in.DownPaymentPct
		loanAmount = math.Max(in.PurchasePrice-downPayment, 0)
		monthlyRate := in.InterestRateAnnual / 12
		interestTotal := loanAmount * monthlyRate * months
		pointsCost := loanAmount * in.PointsPct
		financingCostTotal = interestTotal + pointsCost
	} else {
		downPayment = in.PurchasePrice
	}

	totalInvestment := in.PurchasePrice +
		buyClosingCost +
		in.RehabBudget +
		holdingCostTotal +
		financingCostTotal +
		in.PermitsAndFees +
		in.Staging

	netSaleProceeds := in.ARV - sellClosingCost
	profit := netSaleProceeds - totalInvestment

	roi := safeDiv(profit, totalInvestment)
	annualizedROI := roi * safeDiv(12, months)

	// The conversion rounds the product, so no fused multiply-add is emitted.
	maxOffer70 := float64(in.ARV*MaxOfferRatio) - in.RehabBudget

	profitMargin := safeDiv(profit, in.ARV)
	speedFactor := math.Min(1, safeDiv(FastFlipMonths, months))
	score := clamp(profitMargin*ScoreMarginWeight+speedFactor*ScoreSpeedWeight, 0, MaxScore)

	return domain.DealMetrics{
		BuyClosingCost:     buyClosingCost,
		SellClosingCost:    sellClosingCost,
		MonthlyCarry:       monthlyCarry,
		HoldingCostTotal:   holdingCostTotal,
		LoanAmount:         loanAmount,
		DownPayment:        downPayment,
		FinancingCostTotal: financingCostTotal,
		TotalInvestment:    totalInvestment,
		NetSaleProceeds:    netSaleProceeds,
		Profit:             profit,
		ROI:                roi,
		AnnualizedROI:      annualizedROI,
		MaxOffer70:         maxOffer70,
		Score:              score,
	}
}
