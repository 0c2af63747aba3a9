package domain

// DealInputs holds everything needed to evaluate a single flip.
// Percentages are fractions: 0.03 means 3%.
type DealInputs struct {
	PurchasePrice float64 `json:"purchase_price"`
	ARV           float64 `json:"arv"`
	RehabBudget   float64 `json:"rehab_budget"`
	HoldingMonths int     `json:"holding_months"`

	BuyClosingPct  float64 `json:"buy_closing_pct"`
	SellClosingPct float64 `json:"sell_closing_pct"`

	AnnualTaxes      float64 `json:"annual_taxes"`
	AnnualInsurance  float64 `json:"annual_insurance"`
	MonthlyUtilities float64 `json:"monthly_utilities"`
	MonthlyHOA       float64 `json:"monthly_hoa"`
	MonthlyMisc      float64 `json:"monthly_misc"`

	PermitsAndFees float64 `json:"permits_and_fees"`
	Staging        float64 `json:"staging"`

	// Financing fields are ignored unless UseFinancing is set.
	UseFinancing       bool    `json:"use_financing"`
	DownPaymentPct     float64 `json:"down_payment_pct"`
	InterestRateAnnual float64 `json:"interest_rate_annual"`
	PointsPct          float64 `json:"points_pct"`
}

// DealMetrics is the derived view of a DealInputs.
type DealMetrics struct {
	BuyClosingCost     float64 `json:"buy_closing_cost"`
	SellClosingCost    float64 `json:"sell_closing_cost"`
	MonthlyCarry       float64 `json:"monthly_carry"`
	HoldingCostTotal   float64 `json:"holding_cost_total"`
	LoanAmount         float64 `json:"loan_amount"`
	DownPayment        float64 `json:"down_payment"`
	FinancingCostTotal float64 `json:"financing_cost_total"`
	TotalInvestment    float64 `json:"total_investment"`
	NetSaleProceeds    float64 `json:"net_sale_proceeds"`
	Profit             float64 `json:"profit"`
	ROI                float64 `json:"roi"`
	AnnualizedROI      float64 `json:"annualized_roi"`
	MaxOffer70         float64 `json:"max_offer_70"`
	Score              float64 `json:"score"`
}

// DefaultDealInputs returns a sample deal with sensible starting values.
func DefaultDealInputs() DealInputs {
	return DealInputs{
		PurchasePrice:      150000,
		ARV:                260000,
		RehabBudget:        40000,
		HoldingMonths:      6,
		BuyClosingPct:      0.03,
		SellClosingPct:     0.06,
		AnnualTaxes:        3000,
		AnnualInsurance:    1500,
		MonthlyUtilities:   400,
		UseFinancing:       false,
		DownPaymentPct:     0.20,
		InterestRateAnnual: 0.10,
		PointsPct:          0.02,
	}
}
