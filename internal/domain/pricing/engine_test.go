package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCalculate_SingleFilerWithoutIncome(t *testing.T) {
	q := Calculate(ClientDetails{PrepType: PrepIndividual, FilingStatus: FilingSingle})

	assert.Equal(t, Estimate{Min: 750, Max: 1200}, q.Estimate)
	assert.Equal(t, 0, q.ICPScore)
	assert.Equal(t, CategoryReferral, q.LeadCategory)
}

func TestCalculate_WealthyJointFiler(t *testing.T) {
	q := Calculate(ClientDetails{
		PrepType:         PrepIndividual,
		FilingStatus:     FilingMarriedJoint,
		IndividualIncome: IncomeOver5M,
		K1Forms:          "3",
		States:           "3",
	})

	assert.Equal(t, Estimate{Min: 3950, Max: 6350}, q.Estimate)
	assert.Equal(t, 77, q.ICPScore)
	assert.Equal(t, CategoryPremium, q.LeadCategory)
}

func TestEstimatePrice_IndividualAdders(t *testing.T) {
	d := ClientDetails{
		PrepType:         PrepIndividual,
		FilingStatus:     FilingHeadOfHousehold,
		IndividualIncome: Income250KTo500K,
		HomeOwner:        HomeOwnerYes,
		K1Forms:          "4+",
		States:           "5+",
	}
	// 850/1350 + home 150/250 + k1 4*200/4*350 + states 4*250/4*400
	assert.Equal(t, Estimate{Min: 2800, Max: 4600}, EstimatePrice(d))
}

func TestEstimatePrice_Business(t *testing.T) {
	d := ClientDetails{
		PrepType:     PrepBusiness,
		BusinessType: BusinessSCorp,
		Revenue:      Revenue1MTo5M,
		Shareholders: Shareholders2To5,
	}
	// 1500*1.3*1.4 = 2730, 2500*1.3*1.4 = 4550
	assert.Equal(t, Estimate{Min: 2730, Max: 4550}, EstimatePrice(d))
}

func TestEstimatePrice_BusinessNeedsType(t *testing.T) {
	d := ClientDetails{PrepType: PrepBusiness, Revenue: RevenueOver50M}
	assert.Equal(t, Estimate{}, EstimatePrice(d))
}

func TestEstimatePrice_BothScalesRunningTotal(t *testing.T) {
	d := ClientDetails{
		PrepType:     PrepBoth,
		FilingStatus: FilingSingle,
		BusinessType: BusinessSoleProprietor,
		Revenue:      Revenue5MTo15M,
		Shareholders: ShareholdersOne,
	}
	// (750+1200, 1200+2000) * 1.8
	assert.Equal(t, Estimate{Min: 3510, Max: 5760}, EstimatePrice(d))
}

func TestEstimatePrice_UnknownValuesFallBack(t *testing.T) {
	d := ClientDetails{
		PrepType:         PrepBoth,
		FilingStatus:     "widowed",
		IndividualIncome: "lots",
		K1Forms:          "many",
		States:           "none",
		BusinessType:     "trust",
		Revenue:          "huge",
		Shareholders:     "several",
	}
	// single 750/1200 + other 1400/2200, every multiplier 1
	assert.Equal(t, Estimate{Min: 2150, Max: 3400}, EstimatePrice(d))
}

func TestEstimatePrice_RoundsHalfUp(t *testing.T) {
	d := ClientDetails{
		PrepType:     PrepBusiness,
		BusinessType: BusinessOther,
		Revenue:      Revenue1MTo5M,
		Shareholders: Shareholders10To24,
	}
	// 1400*1.3*2.3 = 4186, 2200*1.3*2.3 = 6578
	assert.Equal(t, Estimate{Min: 4186, Max: 6578}, EstimatePrice(d))
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, 2, roundHalfUp(2.4999))
}

func TestCalculateWith_LinearShareholders(t *testing.T) {
	d := ClientDetails{
		PrepType:     PrepBusiness,
		BusinessType: BusinessCCorp,
		Revenue:      RevenueUnder1M,
		Shareholders: Shareholders6To9,
	}
	// 6 shareholders: 1 + 5*0.1
	assert.Equal(t, Estimate{Min: 3000, Max: 5250}, CalculateWith(d, LinearShareholders).Estimate)
	// bucket: 1.8
	assert.Equal(t, Estimate{Min: 3600, Max: 6300}, CalculateWith(d, nil).Estimate)

	d.Shareholders = Shareholders25OrMore
	assert.Equal(t, 2.0, LinearShareholders(d))
}

func TestICPScore_Clamped(t *testing.T) {
	d := ClientDetails{
		IndividualIncome: IncomeOver5M,
		Revenue:          RevenueOver50M,
		K1Forms:          "4+",
		States:           "5+",
		PrimaryGoal:      GoalComprehensive,
		BudgetRange:      BudgetOver25K,
	}
	assert.Equal(t, 100, ICPScore(d))

	d = ClientDetails{States: "-3"}
	assert.Equal(t, 0, ICPScore(d))
}

func TestICPScore_Components(t *testing.T) {
	d := ClientDetails{
		IndividualIncome: Income500KTo1M, // 25
		Revenue:          Revenue5MTo15M, // 21
		K1Forms:          "2",            // 6
		States:           "2",            // 4
		PrimaryGoal:      GoalSavings,    // 8
		BudgetRange:      Budget2KTo5K,   // 6
	}
	assert.Equal(t, 70, ICPScore(d))
}

func TestDetermineLeadCategory(t *testing.T) {
	cases := []struct {
		score, max int
		want       LeadCategory
	}{
		{75, 3000, CategoryPremium},
		{100, 2999, CategoryQualified},
		{60, 2000, CategoryQualified},
		{59, 10000, CategoryStandard},
		{40, 1500, CategoryStandard},
		{39, 100000, CategoryReferral},
		{90, 1499, CategoryReferral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetermineLeadCategory(tc.score, tc.max), "score=%d max=%d", tc.score, tc.max)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	d := DefaultDetails()
	d.IndividualIncome = Income1MTo5M
	first := Calculate(d)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(d))
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in string
		n  int
		ok bool
	}{
		{"4+", 4, true},
		{"10-24", 10, true},
		{" 7", 7, true},
		{"-2", -2, true},
		{"+3", 3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, tc := range cases {
		n, ok := leadingInt(tc.in)
		assert.Equal(t, tc.n, n, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestDisplay(t *testing.T) {
	est := Estimate{Min: 3950, Max: 12600}

	year := Display(est, DisplayYear)
	assert.Equal(t, "3,950 - 12,600", year.Text)
	assert.Equal(t, "Annual cost estimate", year.Description)

	month := Display(est, DisplayMonth)
	assert.Equal(t, 329, month.Min)
	assert.Equal(t, 1050, month.Max)
	assert.Equal(t, "329 - 1,050", month.Text)

	assert.Equal(t, year, Display(est, "weekly"))
}

func TestCategoryInfo(t *testing.T) {
	assert.Equal(t, "Schedule Private Consultation", CategoryInfo(CategoryPremium).CTA)
	assert.Equal(t, "Better Fit Elsewhere", CategoryInfo("bogus").Title)
	assert.True(t, CategoryQualified.Valid())
	assert.False(t, LeadCategory("vip").Valid())
}
