package pricing

// PrepType selects which return(s) the client needs prepared.
type PrepType string

const (
	PrepIndividual PrepType = "individual"
	PrepBusiness   PrepType = "business"
	PrepBoth       PrepType = "both"
)

func (p PrepType) includesIndividual() bool {
	switch p {
	case PrepIndividual, PrepBoth:
		return true
	default:
		return false
	}
}

func (p PrepType) includesBusiness() bool {
	switch p {
	case PrepBusiness, PrepBoth:
		return true
	default:
		return false
	}
}

type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "marriedJoint"
	FilingMarriedSeparate FilingStatus = "marriedSeparate"
	FilingHeadOfHousehold FilingStatus = "headOfHousehold"
)

type HomeOwner string

const (
	HomeOwnerUnset HomeOwner = ""
	HomeOwnerYes   HomeOwner = "yes"
	HomeOwnerNo    HomeOwner = "no"
)

// K1Forms is the K-1 count bucket ("0".."3", "4+").
type K1Forms string

// States is the filing-state count bucket ("1".."4", "5+").
type States string

type BusinessType string

const (
	BusinessUnset          BusinessType = ""
	BusinessSCorp          BusinessType = "scorp"
	BusinessCCorp          BusinessType = "ccorp"
	BusinessMultiMemberLLC BusinessType = "multiMemberLLC"
	BusinessSoleProprietor BusinessType = "soleProprietor"
	BusinessOther          BusinessType = "other"
)

type Revenue string

const (
	RevenueUnset    Revenue = ""
	RevenueUnder1M  Revenue = "under1m"
	Revenue1MTo5M   Revenue = "1m-5m"
	Revenue5MTo15M  Revenue = "5m-15m"
	Revenue15MTo50M Revenue = "15m-50m"
	RevenueOver50M  Revenue = "over50m"
)

// Shareholders is the shareholder count bucket.
type Shareholders string

const (
	ShareholdersOne      Shareholders = "1"
	Shareholders2To5     Shareholders = "2-5"
	Shareholders6To9     Shareholders = "6-9"
	Shareholders10To24   Shareholders = "10-24"
	Shareholders25OrMore Shareholders = "25+"
)

type PrimaryGoal string

const (
	GoalUnset         PrimaryGoal = ""
	GoalCompliance    PrimaryGoal = "compliance"
	GoalSavings       PrimaryGoal = "savings"
	GoalGrowth        PrimaryGoal = "growth"
	GoalComprehensive PrimaryGoal = "comprehensive"
)

type BudgetRange string

const (
	BudgetUnset    BudgetRange = ""
	BudgetUnder2K  BudgetRange = "under2k"
	Budget2KTo5K   BudgetRange = "2k-5k"
	Budget5KTo10K  BudgetRange = "5k-10k"
	Budget10KTo25K BudgetRange = "10k-25k"
	BudgetOver25K  BudgetRange = "over25k"
)

type Timeline string

const (
	TimelineUnset     Timeline = ""
	TimelineImmediate Timeline = "immediate"
	TimelineMonth     Timeline = "month"
	TimelineQuarter   Timeline = "quarter"
	TimelineExploring Timeline = "exploring"
)

type IndividualIncome string

const (
	IncomeUnset      IndividualIncome = ""
	IncomeUnder250K  IndividualIncome = "under250k"
	Income250KTo500K IndividualIncome = "250k-500k"
	Income500KTo1M   IndividualIncome = "500k-1m"
	Income1MTo5M     IndividualIncome = "1m-5m"
	IncomeOver5M     IndividualIncome = "over5m"
)

// ClientDetails is one snapshot of the questionnaire answers.
// Empty strings mean the question has not been answered yet.
type ClientDetails struct {
	PrepType         PrepType         `json:"prepType" form:"prepType"`
	FilingStatus     FilingStatus     `json:"filingStatus" form:"filingStatus"`
	HomeOwner        HomeOwner        `json:"homeOwner" form:"homeOwner"`
	K1Forms          K1Forms          `json:"k1Forms" form:"k1Forms"`
	States           States           `json:"states" form:"states"`
	BusinessType     BusinessType     `json:"businessType" form:"businessType"`
	Revenue          Revenue          `json:"revenue" form:"revenue"`
	Shareholders     Shareholders     `json:"shareholders" form:"shareholders"`
	PrimaryGoal      PrimaryGoal      `json:"primaryGoal" form:"primaryGoal"`
	BudgetRange      BudgetRange      `json:"budgetRange" form:"budgetRange"`
	Timeline         Timeline         `json:"timeline" form:"timeline"`
	IndividualIncome IndividualIncome `json:"individualIncome" form:"individualIncome"`
}

// DefaultDetails returns the questionnaire's initial answers.
func DefaultDetails() ClientDetails {
	return ClientDetails{
		PrepType:     PrepIndividual,
		FilingStatus: FilingSingle,
		K1Forms:      "0",
		States:       "1",
		Shareholders: ShareholdersOne,
	}
}

// K1Count is the parsed number of K-1 forms; unparseable buckets count as zero.
func (d ClientDetails) K1Count() int {
	n, ok := leadingInt(string(d.K1Forms))
	if !ok || n == 0 {
		return 0
	}
	return n
}

// StateCount is the parsed number of filing states; unparseable buckets count as one.
func (d ClientDetails) StateCount() int {
	n, ok := leadingInt(string(d.States))
	if !ok || n == 0 {
		return 1
	}
	return n
}

// ShareholderCount is the parsed lower bound of the shareholder bucket.
func (d ClientDetails) ShareholderCount() int {
	n, ok := leadingInt(string(d.Shareholders))
	if !ok || n == 0 {
		return 1
	}
	return n
}

// leadingInt reads an optionally signed run of leading digits, so "4+" is 4
// and "10-24" is 10. Leading whitespace is skipped.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n < 1<<30 {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
