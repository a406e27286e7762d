// Package amortize simulates loan balances month by month. It backs both the
// standalone mortgage calculator and the generic debt payoff estimator. All
// intermediate values are rounded to cents in statement order, so schedules
// agree with reference amortization tables to the cent.
package amortize

import (
	"errors"
	"math"
	"time"

	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/datetime"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

// Simulation-fatal errors. The caller of a single simulation halts on these;
// batch callers downgrade them to per-item statuses instead.
var (
	// ErrInvalidPayment means the monthly payment is not positive.
	ErrInvalidPayment = errors.New("monthly payment must be greater than zero")

	// ErrNonAmortizing means the payment does not cover the first month's
	// interest, so the balance would never decrease.
	ErrNonAmortizing = errors.New("monthly payment does not cover monthly interest")
)

// Input describes one simulation run.
type Input struct {
	Principal      float64
	APRPercent     float64
	MonthlyPayment float64
	StartDate      time.Time

	// ExtraMonthly is applied toward principal every month;
	// ExtraOneTime lands once, in the month at ExtraOneTimeMonthIndex
	// (0 = the first payment month).
	ExtraMonthly           float64
	ExtraOneTime           float64
	ExtraOneTimeMonthIndex int

	// MaxMonths caps the run against pathological inputs; zero means the
	// package default.
	MaxMonths int
}

// PaymentRecord is one row of an amortization schedule.
type PaymentRecord struct {
	Index              int       `json:"paymentNumber"`
	Date               time.Time `json:"date"`
	BeginningBalance   float64   `json:"beginningBalance"`
	Payment            float64   `json:"payment"`
	Extra              float64   `json:"extra"`
	Interest           float64   `json:"interest"`
	Principal          float64   `json:"principal"`
	EndingBalance      float64   `json:"endingBalance"`
	CumulativeInterest float64   `json:"cumulativeInterest"`
}

// Result is the schedule plus its summary aggregates. The schedule is owned
// by the caller and immutable by convention; re-simulate to get another.
type Result struct {
	Schedule      []PaymentRecord
	PayoffDate    *time.Time
	Months        int
	TotalInterest float64
	TotalPaid     float64
}

// Simulate builds the amortization schedule until payoff or MaxMonths.
// A non-positive principal yields an empty result without error; a
// non-positive payment is ErrInvalidPayment; a payment at or below the first
// month's interest is ErrNonAmortizing, detected before any iteration.
func Simulate(in Input) (Result, error) {
	maxMonths := in.MaxMonths
	if maxMonths <= 0 {
		maxMonths = constants.DefaultSimulationMonths
	}

	balance := in.Principal
	if balance <= 0 {
		return Result{}, nil
	}
	if in.MonthlyPayment <= 0 {
		return Result{}, ErrInvalidPayment
	}

	rate := in.APRPercent / constants.PercentageMultiplier / constants.MonthsPerYear
	if rate > 0 && in.MonthlyPayment <= balance*rate {
		return Result{}, ErrNonAmortizing
	}

	extraMonthly := math.Max(0, in.ExtraMonthly)
	oneTime := math.Max(0, in.ExtraOneTime)

	var (
		schedule    []PaymentRecord
		cumInterest float64
		payoffDate  *time.Time
	)

	for i := 0; i < maxMonths && balance > constants.CurrencyTolerance; i++ {
		date := datetime.AddMonths(in.StartDate, i)

		// Statement-style rounding: every figure lands on whole cents before
		// it feeds the next one.
		beginning := mathutil.Round(balance)

		interest := 0.0
		if rate > 0 {
			interest = mathutil.Round(beginning * rate)
		}

		amountDue := mathutil.Round(beginning + interest)
		basePayment := mathutil.Min(mathutil.Round(in.MonthlyPayment), amountDue)

		extra := extraMonthly
		if i == in.ExtraOneTimeMonthIndex {
			extra += oneTime
		}
		extra = mathutil.Round(extra)

		totalPayment := mathutil.Min(mathutil.Round(basePayment+extra), amountDue)
		principalPaid := mathutil.Round(math.Max(0, totalPayment-interest))
		ending := mathutil.Round(math.Max(0, beginning-principalPaid))

		// Within a penny of zero counts as paid off; snap to an exact payoff
		// so the final row closes the loan cleanly.
		if ending <= constants.CurrencyTolerance {
			principalPaid = beginning
			totalPayment = mathutil.Round(interest + principalPaid)
			ending = 0
		}

		cumInterest += interest

		schedule = append(schedule, PaymentRecord{
			Index:              i + 1,
			Date:               date,
			BeginningBalance:   beginning,
			Payment:            basePayment,
			Extra:              math.Max(0, totalPayment-basePayment),
			Interest:           interest,
			Principal:          principalPaid,
			EndingBalance:      ending,
			CumulativeInterest: cumInterest,
		})

		balance = ending
		if balance <= constants.CurrencyTolerance && payoffDate == nil {
			d := date
			payoffDate = &d
		}
	}

	result := Result{
		Schedule:   schedule,
		PayoffDate: payoffDate,
		Months:     len(schedule),
	}
	for _, record := range schedule {
		result.TotalPaid += record.Payment + record.Extra
		result.TotalInterest += record.Interest
	}
	return result, nil
}
