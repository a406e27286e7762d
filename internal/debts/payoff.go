package debts

import (
	"errors"
	"time"

	"github.com/kmortenson/finance-dashboard/internal/amortize"
	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

// PayoffStatus classifies the outcome of one debt's independent simulation.
type PayoffStatus string

const (
	// StatusPaidOff means the balance reached zero within the cap.
	StatusPaidOff PayoffStatus = "paid_off"

	// StatusNonAmortizing means the stated payment does not cover the
	// monthly interest; the row carries the minimum payment that would.
	StatusNonAmortizing PayoffStatus = "non_amortizing"

	// StatusNoPayment means no monthly payment was entered.
	StatusNoPayment PayoffStatus = "no_payment"

	// StatusTooLong means the debt does not pay off within the 600-month
	// cap. An expected edge case for underfunded debts, not an error.
	StatusTooLong PayoffStatus = "too_long"
)

// PayoffRow is the per-debt result inside an aggregate estimate.
type PayoffRow struct {
	Debt           string       `json:"debt"`
	Balance        float64      `json:"balance"`
	APRPercent     float64      `json:"aprPercent"`
	MonthlyPayment float64      `json:"monthlyPayment"`
	Status         PayoffStatus `json:"status"`
	Months         int          `json:"months,omitempty"`
	PayoffDate     *time.Time   `json:"payoffDate,omitempty"`
	Interest       float64      `json:"interest,omitempty"`

	// MinimumToAmortize is set on non-amortizing rows: the smallest payment
	// that starts reducing principal.
	MinimumToAmortize float64 `json:"minimumToAmortize,omitempty"`
}

// AggregatePayoff is the combined timeline across all debts paid
// simultaneously at their stated minimums. Debts are not cross-subsidized:
// this is not a rollover avalanche/snowball simulation, so the overall
// timeline is an approximation even though the ranking order is exact.
type AggregatePayoff struct {
	OverallMonths     int        `json:"overallMonths"`
	OverallInterest   float64    `json:"overallInterest"`
	OverallPayoffDate *time.Time `json:"overallPayoffDate,omitempty"`
	Rows              []PayoffRow `json:"rows"`
	HasNonAmortizing  bool       `json:"hasNonAmortizing"`
}

// EstimateAggregatePayoff simulates every debt with a positive balance
// independently, capped at 600 months. One bad debt degrades to a status row
// instead of aborting the batch. The overall timeline is the latest per-debt
// payoff; overall interest sums the interest of debts that do pay off.
func EstimateAggregatePayoff(debtRows []ledger.DebtRow, startDate time.Time) AggregatePayoff {
	var agg AggregatePayoff

	for _, debt := range debtRows {
		if debt.Balance <= 0 {
			continue
		}

		row := PayoffRow{
			Debt:           debt.Debt,
			Balance:        debt.Balance,
			APRPercent:     debt.APRPercent,
			MonthlyPayment: debt.MonthlyPayment,
		}

		if debt.MonthlyPayment <= 0 {
			row.Status = StatusNoPayment
			agg.Rows = append(agg.Rows, row)
			continue
		}

		result, err := amortize.Simulate(amortize.Input{
			Principal:      debt.Balance,
			APRPercent:     debt.APRPercent,
			MonthlyPayment: debt.MonthlyPayment,
			StartDate:      startDate,
			MaxMonths:      constants.DebtPayoffCapMonths,
		})
		switch {
		case errors.Is(err, amortize.ErrNonAmortizing):
			monthlyRate := debt.APRPercent / constants.PercentageMultiplier / constants.MonthsPerYear
			row.Status = StatusNonAmortizing
			row.MinimumToAmortize = mathutil.Round(debt.Balance*monthlyRate + constants.CurrencyTolerance)
			agg.HasNonAmortizing = true
		case err != nil:
			// Payment positivity was checked above; nothing else can fail.
			row.Status = StatusNoPayment
		case result.PayoffDate == nil:
			row.Status = StatusTooLong
			row.Months = result.Months
			row.Interest = result.TotalInterest
		default:
			row.Status = StatusPaidOff
			row.Months = result.Months
			row.PayoffDate = result.PayoffDate
			row.Interest = result.TotalInterest

			agg.OverallInterest += result.TotalInterest
			if result.Months > agg.OverallMonths {
				agg.OverallMonths = result.Months
				agg.OverallPayoffDate = result.PayoffDate
			}
		}

		agg.Rows = append(agg.Rows, row)
	}

	return agg
}
