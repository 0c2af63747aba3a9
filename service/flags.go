package service

import "flip-advisor/domain"

// EvaluateFlags turns a computed deal into advisory flags, in display order.
func EvaluateFlags(in domain.DealInputs, m domain.DealMetrics) []domain.Flag {
	flags := make([]domain.Flag, 0, 4)

	if in.PurchasePrice > m.MaxOffer70 {
		flags = append(flags, domain.Flag{
			Level:   domain.FlagError,
			Code:    domain.FlagCodeAboveMaxOffer,
			Message: "Purchase price is ABOVE the 70% rule max offer (higher risk / thin margin).",
		})
	} else {
		flags = append(flags, domain.Flag{
			Level:   domain.FlagSuccess,
			Code:    domain.FlagCodeWithinMaxOffer,
			Message: "Purchase price is within the 70% rule max offer (better margin).",
		})
	}

	if m.Profit <= 0 {
		flags = append(flags, domain.Flag{
			Level:   domain.FlagWarning,
			Code:    domain.FlagCodeNonPositiveProfit,
			Message: "Profit is not positive. Re-check ARV, rehab, holding, and selling costs.",
		})
	} else {
		flags = append(flags, domain.Flag{
			Level:   domain.FlagSuccess,
			Code:    domain.FlagCodePositiveProfit,
			Message: "Profit is positive based on inputs.",
		})
	}

	// 7 to 9 months is neutral and gets no flag.
	switch {
	case in.HoldingMonths > LongHoldMonths:
		flags = append(flags, domain.Flag{
			Level:   domain.FlagWarning,
			Code:    domain.FlagCodeLongHold,
			Message: "Long holding period. Carry + market risk increases with time.",
		})
	case in.HoldingMonths <= FastFlipMonths:
		flags = append(flags, domain.Flag{
			Level:   domain.FlagSuccess,
			Code:    domain.FlagCodeFastFlip,
			Message: "Holding period is in a fast-flip range (<= 6 months).",
		})
	}

	if !in.UseFinancing {
		flags = append(flags, domain.Flag{
			Level:   domain.FlagInfo,
			Code:    domain.FlagCodeCashDeal,
			Message: "Financing is OFF. ROI uses total cash invested (purchase+costs).",
		})
	}

	return flags
}
