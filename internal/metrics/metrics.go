// Package metrics derives the dashboard's summary numbers from the category
// tables and settings. Compute is a pure function: it takes its full input as
// arguments, holds no state, and is recomputed from scratch on every read.
package metrics

import (
	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

// Bundle is the full derived-metrics set. Percentage fields are pointers: nil
// means the denominator was not positive and the value is undefined, which
// renders as an em dash rather than NaN or a division error.
type Bundle struct {
	TotalIncome           float64 `json:"totalIncome"`
	ManualDeductionsTotal float64 `json:"manualDeductionsTotal"`
	NetIncome             float64 `json:"netIncome"`
	EstimatedTax          float64 `json:"estimatedTax"`

	FixedTotal        float64 `json:"fixedTotal"`
	EssentialTotal    float64 `json:"essentialTotal"`
	NonessentialTotal float64 `json:"nonessentialTotal"`
	ExpensesTotal     float64 `json:"expensesTotal"`

	SavingTotal       float64 `json:"savingTotal"`
	InvestingTotal    float64 `json:"investingTotal"`
	InvestingCashflow float64 `json:"investingCashflow"`
	InvestingDisplay  float64 `json:"investingDisplay"`

	TotalMonthlyDebtPayments float64 `json:"totalMonthlyDebtPayments"`
	TotalOutflow             float64 `json:"totalOutflow"`
	Remaining                float64 `json:"remaining"`
	HasDebt                  bool    `json:"hasDebt"`

	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"netWorth"`

	EmployeeRetirement     float64 `json:"employeeRetirement"`
	CompanyMatch           float64 `json:"companyMatch"`
	TotalRetirementContrib float64 `json:"totalRetirementContrib"`

	InvestingRateOfGross *float64 `json:"investingRateOfGross"`
	InvestingRateOfNet   *float64 `json:"investingRateOfNet"`

	EmergencyMinimumMonthly  float64 `json:"emergencyMinimumMonthly"`
	EmergencyMinimum3Months  float64 `json:"emergencyMinimum3Months"`
	EmergencyMinimum6Months  float64 `json:"emergencyMinimum6Months"`
	EmergencyMinimum12Months float64 `json:"emergencyMinimum12Months"`

	NeedsPct       *float64 `json:"needsPct"`
	WantsPct       *float64 `json:"wantsPct"`
	SaveInvestPct  *float64 `json:"saveInvestPct"`
	UnallocatedPct *float64 `json:"unallocatedPct"`

	SafeToSpendWeekly   float64 `json:"safeToSpendWeekly"`
	SafeToSpendBiweekly float64 `json:"safeToSpendBiweekly"`
	SafeToSpendDaily    float64 `json:"safeToSpendDaily"`
}

// Compute derives the full metrics bundle from the current tables and
// settings. It never fails: malformed individual cells have already been
// coerced to zero at the boundary, and zero denominators yield nil
// percentages rather than errors.
func Compute(tables ledger.Tables, settings Settings) Bundle {
	var m Bundle

	m.TotalIncome = ledger.Sum(tables.Income)

	if settings.UsePaycheckBreakdown {
		m.ManualDeductionsTotal = settings.Breakdown.DeductionsTotal()
	}
	m.NetIncome = m.TotalIncome - m.ManualDeductionsTotal
	// Flat-rate tax estimation is a stored setting only; the estimate itself
	// stays zero until the gross estimate mode grows real behavior.
	m.EstimatedTax = 0

	m.FixedTotal = ledger.Sum(tables.Fixed)
	m.EssentialTotal = ledger.Sum(tables.Essential)
	m.NonessentialTotal = ledger.Sum(tables.NonEssential)
	m.ExpensesTotal = m.FixedTotal + m.EssentialTotal + m.NonessentialTotal

	m.SavingTotal = ledger.Sum(tables.Saving)
	m.InvestingTotal = ledger.Sum(tables.Investing)

	// Cashflow counts only what leaves take-home pay; the display figure adds
	// payroll-invisible retirement contributions on top.
	m.InvestingCashflow = m.InvestingTotal
	m.InvestingDisplay = m.InvestingTotal + settings.Breakdown.RetirementEmployee + settings.Breakdown.CompanyMatch

	m.TotalMonthlyDebtPayments = ledger.Sum(tables.Debts)
	m.HasDebt = m.TotalMonthlyDebtPayments > 0

	m.TotalOutflow = m.ExpensesTotal + m.SavingTotal + m.InvestingCashflow + m.TotalMonthlyDebtPayments
	m.Remaining = m.NetIncome - m.TotalOutflow

	m.TotalAssets = ledger.Sum(tables.Assets)
	m.TotalLiabilities = ledger.Sum(tables.Liabilities)
	m.NetWorth = m.TotalAssets - m.TotalLiabilities

	m.EmployeeRetirement = settings.Breakdown.RetirementEmployee
	m.CompanyMatch = settings.Breakdown.CompanyMatch
	m.TotalRetirementContrib = m.EmployeeRetirement + m.CompanyMatch

	m.InvestingRateOfGross = mathutil.Percentage(m.InvestingDisplay, m.TotalIncome)
	m.InvestingRateOfNet = mathutil.Percentage(m.InvestingDisplay, m.NetIncome)

	// The bare-survival floor: fixed bills, essentials, and debt minimums.
	// Non-essentials and saving/investing are not part of it.
	m.EmergencyMinimumMonthly = m.FixedTotal + m.EssentialTotal + m.TotalMonthlyDebtPayments
	m.EmergencyMinimum3Months = m.EmergencyMinimumMonthly * 3
	m.EmergencyMinimum6Months = m.EmergencyMinimumMonthly * 6
	m.EmergencyMinimum12Months = m.EmergencyMinimumMonthly * 12

	if m.NetIncome > 0 {
		needs := (m.EmergencyMinimumMonthly / m.NetIncome) * constants.PercentageMultiplier
		wants := (m.NonessentialTotal / m.NetIncome) * constants.PercentageMultiplier
		saveInvest := ((m.SavingTotal + m.InvestingCashflow) / m.NetIncome) * constants.PercentageMultiplier
		unallocated := mathutil.Max(0, constants.PercentageMultiplier-(needs+wants+saveInvest))
		m.NeedsPct = &needs
		m.WantsPct = &wants
		m.SaveInvestPct = &saveInvest
		m.UnallocatedPct = &unallocated
	}

	// Calendar-averaged, not calendar-exact.
	m.SafeToSpendWeekly = m.Remaining / constants.WeeksPerMonth
	m.SafeToSpendBiweekly = m.Remaining / (constants.WeeksPerMonth / 2)
	m.SafeToSpendDaily = m.Remaining / constants.DaysPerMonth

	return m
}
