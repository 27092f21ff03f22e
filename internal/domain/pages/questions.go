package pages

import "taxsite/internal/domain/pricing"

type Option struct {
	Value string
	Label string
}

// Question is one calculator field rendered as a select.
type Question struct {
	Field    string
	Label    string
	Section  string
	Options  []Option
	Selected string
}

func questions(d pricing.ClientDetails) []Question {
	qs := []Question{
		{Field: "primaryGoal", Section: "general", Label: "What's your primary goal for tax services?", Selected: string(d.PrimaryGoal), Options: []Option{
			{"compliance", "Basic Compliance"}, {"savings", "Tax Optimization"},
			{"growth", "Business Growth"}, {"comprehensive", "Comprehensive Advisory"},
		}},
		{Field: "budgetRange", Section: "general", Label: "What's your comfortable budget range for tax services?", Selected: string(d.BudgetRange), Options: []Option{
			{"under2k", "Under $2K"}, {"2k-5k", "$2K - $5K"}, {"5k-10k", "$5K - $10K"},
			{"10k-25k", "$10K - $25K"}, {"over25k", "$25K+"},
		}},
		{Field: "timeline", Section: "general", Label: "When do you need to start?", Selected: string(d.Timeline), Options: []Option{
			{"immediate", "Immediately"}, {"month", "Within a month"},
			{"quarter", "This quarter"}, {"exploring", "Just exploring"},
		}},
		{Field: "prepType", Section: "general", Label: "What type of tax preparation are you looking for?", Selected: string(d.PrepType), Options: []Option{
			{"individual", "Individual"}, {"business", "Business"}, {"both", "Both"},
		}},
		{Field: "individualIncome", Section: "individual", Label: "What's your approximate annual income?", Selected: string(d.IndividualIncome), Options: []Option{
			{"under250k", "Under $250K"}, {"250k-500k", "$250K - $500K"}, {"500k-1m", "$500K - $1M"},
			{"1m-5m", "$1M - $5M"}, {"over5m", "$5M+"},
		}},
		{Field: "filingStatus", Section: "individual", Label: "What is your filing status?", Selected: string(d.FilingStatus), Options: []Option{
			{"single", "Single"}, {"marriedJoint", "Married Filing Jointly"},
			{"marriedSeparate", "Married Filing Separately"}, {"headOfHousehold", "Head of Household"},
		}},
		{Field: "homeOwner", Section: "individual", Label: "Do you own your home?", Selected: string(d.HomeOwner), Options: []Option{
			{"yes", "Yes"}, {"no", "No"},
		}},
		{Field: "k1Forms", Section: "individual", Label: "How many Forms K-1 do you expect to receive this year?", Selected: string(d.K1Forms), Options: []Option{
			{"0", "0"}, {"1", "1"}, {"2", "2"}, {"3", "3"}, {"4+", "4+"},
		}},
		{Field: "states", Section: "individual", Label: "How many states do you anticipate filing in?", Selected: string(d.States), Options: []Option{
			{"1", "1"}, {"2", "2"}, {"3", "3"}, {"4", "4"}, {"5+", "5+"},
		}},
		{Field: "businessType", Section: "business", Label: "What is the tax structure of your entity?", Selected: string(d.BusinessType), Options: []Option{
			{"scorp", "S Corporation"}, {"ccorp", "C Corporation"}, {"multiMemberLLC", "Multi-Member LLC"},
			{"soleProprietor", "SMLLC/Sole Proprietor"}, {"other", "Other"},
		}},
		{Field: "revenue", Section: "business", Label: "What was your gross revenue last year?", Selected: string(d.Revenue), Options: []Option{
			{"under1m", "<$1M"}, {"1m-5m", "$1M - $5M"}, {"5m-15m", "$5M - $15M"},
			{"15m-50m", "$15M - $50M"}, {"over50m", "$50M+"},
		}},
		{Field: "shareholders", Section: "business", Label: "How many shareholders/members/partners are there (including you)?", Selected: string(d.Shareholders), Options: []Option{
			{"1", "1"}, {"2-5", "2-5"}, {"6-9", "6-9"}, {"10-24", "10-24"}, {"25+", "25+"},
		}},
	}
	return qs
}
