package domain

type FlagLevel string

const (
	FlagSuccess FlagLevel = "success"
	FlagInfo    FlagLevel = "info"
	FlagWarning FlagLevel = "warning"
	FlagError   FlagLevel = "error"
)

const (
	FlagCodeAboveMaxOffer     = "ABOVE_MAX_OFFER"
	FlagCodeWithinMaxOffer    = "WITHIN_MAX_OFFER"
	FlagCodeNonPositiveProfit = "NON_POSITIVE_PROFIT"
	FlagCodePositiveProfit    = "POSITIVE_PROFIT"
	FlagCodeLongHold          = "LONG_HOLD"
	FlagCodeFastFlip          = "FAST_FLIP"
	FlagCodeCashDeal          = "CASH_DEAL"
)

// Flag is a human readable advisory derived from a deal.
type Flag struct {
	Level   FlagLevel `json:"level"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// DisplayMetrics carries the formatted strings shown to a user.
type DisplayMetrics struct {
	Profit             string `json:"profit"`
	ROI                string `json:"roi"`
	AnnualizedROI      string `json:"annualized_roi"`
	Score              string `json:"score"`
	BuyClosingCost     string `json:"buy_closing_cost"`
	RehabBudget        string `json:"rehab_budget"`
	MonthlyCarry       string `json:"monthly_carry"`
	HoldingCostTotal   string `json:"holding_cost_total"`
	FinancingCostTotal string `json:"financing_cost_total"`
	PermitsAndFees     string `json:"permits_and_fees"`
	Staging            string `json:"staging"`
	TotalInvestment    string `json:"total_investment"`
	ARV                string `json:"arv"`
	SellClosingCost    string `json:"sell_closing_cost"`
	NetSaleProceeds    string `json:"net_sale_proceeds"`
	MaxOffer70         string `json:"max_offer_70"`
}

type DealAnalysis struct {
	ID      string         `json:"id"`
	Inputs  DealInputs     `json:"inputs"`
	Metrics DealMetrics    `json:"metrics"`
	Flags   []Flag         `json:"flags"`
	Display DisplayMetrics `json:"display"`
}
