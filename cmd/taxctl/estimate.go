package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"taxsite/internal/domain/pricing"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price a set of questionnaire answers",
	Long:  "Runs the pricing engine on the given answers and prints the estimate, ICP score, lead category and rendered display as JSON.",
	RunE:  runEstimate,
}

var (
	estimateDetails            = pricing.DefaultDetails()
	estimateDisplay            string
	estimateLinearShareholders bool
)

func init() {
	f := estimateCmd.Flags()
	f.StringVar((*string)(&estimateDetails.PrepType), "prep-type", string(estimateDetails.PrepType), "individual, business or both")
	f.StringVar((*string)(&estimateDetails.FilingStatus), "filing-status", string(estimateDetails.FilingStatus), "single, marriedJoint, marriedSeparate or headOfHousehold")
	f.StringVar((*string)(&estimateDetails.IndividualIncome), "income", "", "under250k, 250k-500k, 500k-1m, 1m-5m or over5m")
	f.StringVar((*string)(&estimateDetails.HomeOwner), "home-owner", "", "yes or no")
	f.StringVar((*string)(&estimateDetails.K1Forms), "k1-forms", string(estimateDetails.K1Forms), "number of K-1 forms (0-3, 4+)")
	f.StringVar((*string)(&estimateDetails.States), "states", string(estimateDetails.States), "number of filing states (1-4, 5+)")
	f.StringVar((*string)(&estimateDetails.BusinessType), "business-type", "", "scorp, ccorp, multiMemberLLC, soleProprietor or other")
	f.StringVar((*string)(&estimateDetails.Revenue), "revenue", "", "under1m, 1m-5m, 5m-15m, 15m-50m or over50m")
	f.StringVar((*string)(&estimateDetails.Shareholders), "shareholders", string(estimateDetails.Shareholders), "1, 2-5, 6-9, 10-24 or 25+")
	f.StringVar((*string)(&estimateDetails.PrimaryGoal), "goal", "", "compliance, savings, growth or comprehensive")
	f.StringVar((*string)(&estimateDetails.BudgetRange), "budget", "", "under2k, 2k-5k, 5k-10k, 10k-25k or over25k")
	f.StringVar((*string)(&estimateDetails.Timeline), "timeline", "", "immediate, month, quarter or exploring")
	f.StringVar(&estimateDisplay, "display", string(pricing.DisplayYear), "year or month")
	f.BoolVar(&estimateLinearShareholders, "linear-shareholders", false, "scale the business fee per shareholder instead of by bucket")

	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	mode := pricing.DisplayMode(estimateDisplay)
	if mode != pricing.DisplayYear && mode != pricing.DisplayMonth {
		return fmt.Errorf("invalid --display %q: want year or month", estimateDisplay)
	}

	var policy pricing.ShareholderPolicy
	if estimateLinearShareholders {
		policy = pricing.LinearShareholders
	}

	out, err := json.MarshalIndent(pricing.NewEstimateResponse(pricing.CalculateWith(estimateDetails, policy), mode), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal estimate: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
