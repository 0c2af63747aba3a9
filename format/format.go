// Package format renders deal numbers for people.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"flip-advisor/domain"
)

// Money renders a whole-dollar, thousands-separated amount: $45,250.
func Money(x float64) string {
	rounded := int64(math.Round(x))
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}
	return "$" + humanize.Comma(rounded)
}

// Pct renders a ratio as a percentage with one decimal: 0.2272 -> 22.7%.
func Pct(x float64) string {
	s := strconv.FormatFloat(x*100, 'f', 1, 64)
	neg := strings.HasPrefix(s, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return s + "%"
	}
	out := humanize.Comma(n) + "." + frac + "%"
	if neg && out != "0.0%" {
		out = "-" + out
	}
	return out
}

func Score(x float64) string {
	return fmt.Sprintf("%.0f", x)
}

// Display formats every user-facing number of an analyzed deal.
func Display(in domain.DealInputs, m domain.DealMetrics) domain.DisplayMetrics {
	return domain.DisplayMetrics{
		Profit:             Money(m.Profit),
		ROI:                Pct(m.ROI),
		AnnualizedROI:      Pct(m.AnnualizedROI),
		Score:              Score(m.Score),
		BuyClosingCost:     Money(m.BuyClosingCost),
		RehabBudget:        Money(in.RehabBudget),
		MonthlyCarry:       Money(m.MonthlyCarry),
		HoldingCostTotal:   Money(m.HoldingCostTotal),
		FinancingCostTotal: Money(m.FinancingCostTotal),
		PermitsAndFees:     Money(in.PermitsAndFees),
		Staging:            Money(in.Staging),
		TotalInvestment:    Money(m.TotalInvestment),
		ARV:                Money(in.ARV),
		SellClosingCost:    Money(m.SellClosingCost),
		NetSaleProceeds:    Money(m.NetSaleProceeds),
		MaxOffer70:         Money(m.MaxOffer70),
	}
}
