package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flip-advisor/domain"
	"flip-advisor/service"
)

func newCalcCommand() *cobra.Command {
	in := domain.DefaultDealInputs()
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Analyze a single deal and print the report",
		Example: `  flip-advisor calc --purchase-price 150000 --arv 260000 --rehab 40000 --months 6
  flip-advisor calc --financing --down-payment-pct 0.2 --interest-rate 0.1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewDealService(nil, zap.NewNop().Sugar(), 0)
			analysis, err := svc.Analyze(cmd.Context(), in)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}
			return writeReport(cmd.OutOrStdout(), analysis)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.PurchasePrice, "purchase-price", in.PurchasePrice, "purchase price")
	f.Float64Var(&in.ARV, "arv", in.ARV, "after repair value")
	f.Float64Var(&in.RehabBudget, "rehab", in.RehabBudget, "rehab budget")
	f.IntVar(&in.HoldingMonths, "months", in.HoldingMonths, "holding months")
	f.Float64Var(&in.BuyClosingPct, "buy-closing-pct", in.BuyClosingPct, "buy closing cost fraction (0.03 = 3%)")
	f.Float64Var(&in.SellClosingPct, "sell-closing-pct", in.SellClosingPct, "sell closing cost fraction (0.06 = 6%)")
	f.Float64Var(&in.AnnualTaxes, "annual-taxes", in.AnnualTaxes, "annual property taxes")
	f.Float64Var(&in.AnnualInsurance, "annual-insurance", in.AnnualInsurance, "annual insurance")
	f.Float64Var(&in.MonthlyUtilities, "monthly-utilities", in.MonthlyUtilities, "monthly utilities")
	f.Float64Var(&in.MonthlyHOA, "monthly-hoa", in.MonthlyHOA, "monthly HOA")
	f.Float64Var(&in.MonthlyMisc, "monthly-misc", in.MonthlyMisc, "monthly misc/maintenance")
	f.Float64Var(&in.PermitsAndFees, "permits", in.PermitsAndFees, "permits and fees")
	f.Float64Var(&in.Staging, "staging", in.Staging, "staging")
	f.BoolVar(&in.UseFinancing, "financing", in.UseFinancing, "finance the purchase")
	f.Float64Var(&in.DownPaymentPct, "down-payment-pct", in.DownPaymentPct, "down payment fraction (0.20 = 20%)")
	f.Float64Var(&in.InterestRateAnnual, "interest-rate", in.InterestRateAnnual, "annual interest rate fraction (0.10 = 10%)")
	f.Float64Var(&in.PointsPct, "points-pct", in.PointsPct, "lender points fraction (0.02 = 2%)")
	f.BoolVar(&asJSON, "json", false, "print the analysis as JSON")

	return cmd
}

func writeReport(out io.Writer, a domain.DealAnalysis) error {
	d := a.Display
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Profit\t%s\n", d.Profit)
	fmt.Fprintf(tw, "ROI\t%s\n", d.ROI)
	fmt.Fprintf(tw, "Annualized ROI (simple)\t%s\n", d.AnnualizedROI)
	fmt.Fprintf(tw, "Deal Score (0-100)\t%s\n", d.Score)

	fmt.Fprintln(tw, "\nCost Breakdown\t")
	fmt.Fprintf(tw, "Buy Closing Cost\t%s\n", d.BuyClosingCost)
	fmt.Fprintf(tw, "Rehab Budget\t%s\n", d.RehabBudget)
	fmt.Fprintf(tw, "Monthly Carry\t%s\n", d.MonthlyCarry)
	fmt.Fprintf(tw, "Holding Cost Total\t%s\n", d.HoldingCostTotal)
	fmt.Fprintf(tw, "Financing Cost Total\t%s\n", d.FinancingCostTotal)
	fmt.Fprintf(tw, "Permits & Fees\t%s\n", d.PermitsAndFees)
	fmt.Fprintf(tw, "Staging\t%s\n", d.Staging)
	fmt.Fprintf(tw, "Total Investment\t%s\n", d.TotalInvestment)

	fmt.Fprintln(tw, "\nSale & Rules\t")
	fmt.Fprintf(tw, "ARV\t%s\n", d.ARV)
	fmt.Fprintf(tw, "Sell Closing Cost\t%s\n", d.SellClosingCost)
	fmt.Fprintf(tw, "Net Sale Proceeds\t%s\n", d.NetSaleProceeds)
	fmt.Fprintf(tw, "70%% Rule Max Offer\t%s\n", d.MaxOffer70)

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nFlags")
	for _, flag := range a.Flags {
		fmt.Fprintf(out, "[%s] %s\n", strings.ToUpper(string(flag.Level)), flag.Message)
	}
	return nil
}
