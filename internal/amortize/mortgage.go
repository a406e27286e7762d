package amortize

import (
	"math"
	"time"

	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

// Payment mode choices for the mortgage calculator. Stored verbatim in saved
// scenarios.
const (
	ModeTermBased     = "Calculate my payment (term-based)"
	ModeManualPayment = "I know my monthly payment"
)

// MortgageInputs are the mortgage calculator's full input set.
type MortgageInputs struct {
	StartDate     time.Time
	Principal     float64
	HomeValue     float64
	APRPercent    float64
	Mode          string
	TermYears     int
	PaymentManual float64
	ExtraMonthly  float64
	ExtraOneTime  float64

	// Monthly housing costs outside principal and interest.
	Taxes     float64
	Insurance float64
	PMI       float64
	HOA       float64
}

// MortgageSummary is the saved-scenario summary: the user's run, the
// zero-extra baseline it is compared against, and the PMI drop-off estimate.
type MortgageSummary struct {
	PayoffDate       *time.Time
	Months           int
	TotalInterest    float64
	TotalPaid        float64
	BaselineMonths   int
	BaselineInterest float64
	InterestSaved    float64
	MonthsSaved      int

	PMIDropDate       *time.Time
	HousingWithPMI    float64
	HousingWithoutPMI float64
}

// MortgageAnalysis bundles both simulation runs with the summary and the
// payment that was actually used.
type MortgageAnalysis struct {
	Payment  float64
	Result   Result
	Baseline Result
	Summary  MortgageSummary
}

// MonthlyPayment computes the standard fixed-rate annuity payment
// P·r·(1+r)^n / ((1+r)^n − 1). Zero rate degenerates to straight division.
func MonthlyPayment(principal, aprPercent float64, termYears int) float64 {
	if principal <= 0 {
		return 0
	}
	n := termYears * constants.MonthsPerYear
	if n <= 0 {
		return 0
	}

	rate := aprPercent / constants.PercentageMultiplier / constants.MonthsPerYear
	if rate <= 0 {
		return principal / float64(n)
	}

	pow := math.Pow(1.0+rate, float64(n))
	return principal * rate * pow / (pow - 1.0)
}

// AnalyzeMortgage sizes the payment, runs the user's scenario and the
// zero-extra baseline, and derives the savings deltas, PMI drop-off point,
// and composite housing costs. The payment from term-based mode is rounded
// up to the next cent so the loan cannot outlive its term.
func AnalyzeMortgage(in MortgageInputs) (MortgageAnalysis, error) {
	payment := in.PaymentManual
	if in.Mode != ModeManualPayment {
		payment = mathutil.CeilCents(MonthlyPayment(in.Principal, in.APRPercent, in.TermYears))
	}

	result, err := Simulate(Input{
		Principal:      in.Principal,
		APRPercent:     in.APRPercent,
		MonthlyPayment: payment,
		StartDate:      in.StartDate,
		ExtraMonthly:   in.ExtraMonthly,
		ExtraOneTime:   in.ExtraOneTime,
		MaxMonths:      constants.MortgageSimulationMonths,
	})
	if err != nil {
		return MortgageAnalysis{}, err
	}

	baseline, err := Simulate(Input{
		Principal:      in.Principal,
		APRPercent:     in.APRPercent,
		MonthlyPayment: payment,
		StartDate:      in.StartDate,
		MaxMonths:      constants.MortgageSimulationMonths,
	})
	if err != nil {
		return MortgageAnalysis{}, err
	}

	summary := MortgageSummary{
		PayoffDate:       result.PayoffDate,
		Months:           result.Months,
		TotalInterest:    result.TotalInterest,
		TotalPaid:        result.TotalPaid,
		BaselineMonths:   baseline.Months,
		BaselineInterest: baseline.TotalInterest,
		InterestSaved:    mathutil.Max(0, baseline.TotalInterest-result.TotalInterest),
	}
	if monthsSaved := baseline.Months - result.Months; monthsSaved > 0 {
		summary.MonthsSaved = monthsSaved
	}

	summary.PMIDropDate = pmiDropDate(result.Schedule, in.HomeValue, in.PMI)
	summary.HousingWithPMI = payment + in.Taxes + in.Insurance + in.PMI + in.HOA
	summary.HousingWithoutPMI = payment + in.Taxes + in.Insurance + in.HOA

	return MortgageAnalysis{
		Payment:  payment,
		Result:   result,
		Baseline: baseline,
		Summary:  summary,
	}, nil
}

// pmiDropDate scans for the first month whose ending balance reaches 80% of
// the home value. Requires both a home value and a PMI amount; otherwise the
// drop-off estimate is disabled.
func pmiDropDate(schedule []PaymentRecord, homeValue, pmi float64) *time.Time {
	if homeValue <= 0 || pmi <= 0 {
		return nil
	}
	threshold := homeValue * constants.PMICutoffRatio
	for _, record := range schedule {
		if record.EndingBalance <= threshold {
			d := record.Date
			return &d
		}
	}
	return nil
}
