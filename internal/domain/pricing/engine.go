// Package pricing computes the fee estimate, ICP score and lead category for a
// set of questionnaire answers. Everything here is pure and never fails: unknown
// or unset answers fall back to a neutral multiplier or a zero score.
package pricing

import "math"

// Estimate is an annual fee range in whole dollars.
type Estimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LeadCategory buckets a prospect by fit.
type LeadCategory string

const (
	CategoryPremium   LeadCategory = "premium"
	CategoryQualified LeadCategory = "qualified"
	CategoryStandard  LeadCategory = "standard"
	CategoryReferral  LeadCategory = "referral"
)

// Valid reports whether c is one of the four known categories.
func (c LeadCategory) Valid() bool {
	switch c {
	case CategoryPremium, CategoryQualified, CategoryStandard, CategoryReferral:
		return true
	default:
		return false
	}
}

// Quote is the full engine output for one ClientDetails snapshot.
type Quote struct {
	Estimate     Estimate     `json:"estimate"`
	ICPScore     int          `json:"icpScore"`
	LeadCategory LeadCategory `json:"leadCategory"`
}

// ShareholderPolicy scales the business fee by ownership complexity.
type ShareholderPolicy func(d ClientDetails) float64

// BucketShareholders keys the multiplier off the shareholder bucket label.
// It is the default policy.
func BucketShareholders(d ClientDetails) float64 {
	switch d.Shareholders {
	case ShareholdersOne:
		return 1
	case Shareholders2To5:
		return 1.4
	case Shareholders6To9:
		return 1.8
	case Shareholders10To24:
		return 2.3
	case Shareholders25OrMore:
		return 3
	default:
		return 1
	}
}

// LinearShareholders adds 10% per shareholder beyond the first, capped at +100%.
func LinearShareholders(d ClientDetails) float64 {
	n := d.ShareholderCount()
	if n <= 1 {
		return 1
	}
	return 1 + float64(min(n-1, 10))*0.1
}

type priceRange struct {
	min float64
	max float64
}

func (r priceRange) scale(m float64) priceRange {
	return priceRange{min: r.min * m, max: r.max * m}
}

func (r priceRange) add(lo, hi float64) priceRange {
	return priceRange{min: r.min + lo, max: r.max + hi}
}

func individualBase(s FilingStatus) priceRange {
	switch s {
	case FilingMarriedJoint:
		return priceRange{950, 1500}
	case FilingMarriedSeparate, FilingHeadOfHousehold:
		return priceRange{850, 1350}
	case FilingSingle:
		return priceRange{750, 1200}
	default:
		return priceRange{750, 1200}
	}
}

func businessBase(t BusinessType) priceRange {
	switch t {
	case BusinessSCorp:
		return priceRange{1500, 2500}
	case BusinessCCorp:
		return priceRange{2000, 3500}
	case BusinessMultiMemberLLC:
		return priceRange{1800, 2800}
	case BusinessSoleProprietor:
		return priceRange{1200, 2000}
	default:
		return priceRange{1400, 2200}
	}
}

func incomeMultiplier(i IndividualIncome) float64 {
	switch i {
	case IncomeUnder250K:
		return 0.5
	case Income250KTo500K:
		return 1
	case Income500KTo1M:
		return 1.5
	case Income1MTo5M:
		return 2.2
	case IncomeOver5M:
		return 3
	default:
		return 1
	}
}

func revenueMultiplier(r Revenue) float64 {
	switch r {
	case RevenueUnder1M:
		return 1
	case Revenue1MTo5M:
		return 1.3
	case Revenue5MTo15M:
		return 1.8
	case Revenue15MTo50M:
		return 2.3
	case RevenueOver50M:
		return 3
	default:
		return 1
	}
}

// EstimatePrice computes the annual fee range with the default shareholder policy.
func EstimatePrice(d ClientDetails) Estimate {
	return estimateWith(d, BucketShareholders)
}

func estimateWith(d ClientDetails, shareholders ShareholderPolicy) Estimate {
	var r priceRange

	if d.PrepType.includesIndividual() {
		base := individualBase(d.FilingStatus)
		r = r.add(base.min, base.max)
		r = r.scale(incomeMultiplier(d.IndividualIncome))
		if d.HomeOwner == HomeOwnerYes {
			r = r.add(150, 250)
		}
		if k1 := d.K1Count(); k1 > 0 {
			r = r.add(float64(k1*200), float64(k1*350))
		}
		if states := d.StateCount(); states > 1 {
			r = r.add(float64((states-1)*250), float64((states-1)*400))
		}
	}

	if d.PrepType.includesBusiness() && d.BusinessType != BusinessUnset {
		base := businessBase(d.BusinessType)
		r = r.add(base.min, base.max)
		r = r.scale(revenueMultiplier(d.Revenue))
		r = r.scale(shareholders(d))
	}

	return Estimate{Min: roundHalfUp(r.min), Max: roundHalfUp(r.max)}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func incomeScore(i IndividualIncome) int {
	switch i {
	case IncomeUnder250K:
		return 0
	case Income250KTo500K:
		return 2
	case Income500KTo1M:
		return 5
	case Income1MTo5M:
		return 8
	case IncomeOver5M:
		return 10
	default:
		return 0
	}
}

func revenueScore(r Revenue) int {
	switch r {
	case RevenueUnder1M:
		return 1
	case Revenue1MTo5M:
		return 4
	case Revenue5MTo15M:
		return 7
	case Revenue15MTo50M:
		return 9
	case RevenueOver50M:
		return 10
	default:
		return 0
	}
}

func goalScore(g PrimaryGoal) int {
	switch g {
	case GoalCompliance:
		return 1
	case GoalSavings:
		return 4
	case GoalGrowth:
		return 7
	case GoalComprehensive:
		return 10
	default:
		return 0
	}
}

func budgetScore(b BudgetRange) int {
	switch b {
	case BudgetUnder2K:
		return 0
	case Budget2KTo5K:
		return 3
	case Budget5KTo10K:
		return 6
	case Budget10KTo25K:
		return 9
	case BudgetOver25K:
		return 10
	default:
		return 0
	}
}

// ICPScore sums the weighted sub-scores and clamps the total to [0, 100].
func ICPScore(d ClientDetails) int {
	k1 := d.K1Count()
	states := d.StateCount()

	score := incomeScore(d.IndividualIncome) * 5
	score += revenueScore(d.Revenue) * 3
	score += min(k1*3, 15)
	score += min((states-1)*4, 16)
	if k1 >= 3 {
		score += 5
	}
	if states >= 3 {
		score += 5
	}
	score += goalScore(d.PrimaryGoal) * 2
	score += budgetScore(d.BudgetRange) * 2

	return max(0, min(score, 100))
}

// DetermineLeadCategory applies the category thresholds in order; first match wins.
func DetermineLeadCategory(score, estimateMax int) LeadCategory {
	switch {
	case score >= 75 && estimateMax >= 3000:
		return CategoryPremium
	case score >= 60 && estimateMax >= 2000:
		return CategoryQualified
	case score >= 40 && estimateMax >= 1500:
		return CategoryStandard
	default:
		return CategoryReferral
	}
}

// Calculate runs the engine with the default shareholder policy.
func Calculate(d ClientDetails) Quote {
	return CalculateWith(d, BucketShareholders)
}

// CalculateWith runs the engine with an explicit shareholder policy. A nil
// policy means BucketShareholders.
func CalculateWith(d ClientDetails, policy ShareholderPolicy) Quote {
	if policy == nil {
		policy = BucketShareholders
	}
	est := estimateWith(d, policy)
	score := ICPScore(d)
	return Quote{
		Estimate:     est,
		ICPScore:     score,
		LeadCategory: DetermineLeadCategory(score, est.Max),
	}
}
