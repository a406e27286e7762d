package amortize

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/kmortenson/finance-dashboard/pkg/datetime"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

var simStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestSimulateThirtyYearLoan(t *testing.T) {
	payment := mathutil.CeilCents(MonthlyPayment(200000, 6.0, 30))
	if math.Abs(payment-1199.11) > 0.001 {
		t.Fatalf("sized payment = %v, expected 1199.11", payment)
	}

	result, err := Simulate(Input{
		Principal:      200000,
		APRPercent:     6.0,
		MonthlyPayment: payment,
		StartDate:      simStart,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	if result.Months != 360 {
		t.Errorf("Months = %d, expected exactly 360", result.Months)
	}
	final := result.Schedule[len(result.Schedule)-1]
	if final.EndingBalance != 0 {
		t.Errorf("final EndingBalance = %v, expected 0", final.EndingBalance)
	}
	if result.PayoffDate == nil {
		t.Fatalf("PayoffDate should be set")
	}
	expectedPayoff := datetime.AddMonths(simStart, 359)
	if !result.PayoffDate.Equal(expectedPayoff) {
		t.Errorf("PayoffDate = %v, expected %v", result.PayoffDate, expectedPayoff)
	}
	if result.TotalInterest <= 0 || result.TotalPaid <= 200000 {
		t.Errorf("totals look wrong: interest %v, paid %v", result.TotalInterest, result.TotalPaid)
	}
}

func TestSimulateScheduleRoundsToCents(t *testing.T) {
	result, err := Simulate(Input{
		Principal:      200000,
		APRPercent:     6.0,
		MonthlyPayment: 1199.11,
		StartDate:      simStart,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}

	for _, record := range result.Schedule[:12] {
		for name, v := range map[string]float64{
			"BeginningBalance": record.BeginningBalance,
			"Interest":         record.Interest,
			"Principal":        record.Principal,
			"EndingBalance":    record.EndingBalance,
		} {
			if mathutil.Round(v) != v {
				t.Errorf("month %d %s = %v is not whole cents", record.Index, name, v)
			}
		}
		if diff := record.BeginningBalance - record.Principal - record.EndingBalance; math.Abs(diff) > 0.001 {
			t.Errorf("month %d balance identity broken by %v", record.Index, diff)
		}
	}

	// First month of a 6% loan: interest is exactly balance * 0.5%.
	if result.Schedule[0].Interest != 1000.00 {
		t.Errorf("first month interest = %v, expected 1000.00", result.Schedule[0].Interest)
	}
}

func TestSimulateNonAmortizing(t *testing.T) {
	result, err := Simulate(Input{
		Principal:      10000,
		APRPercent:     24.0,
		MonthlyPayment: 150,
		StartDate:      simStart,
	})
	if !errors.Is(err, ErrNonAmortizing) {
		t.Fatalf("expected ErrNonAmortizing, got %v", err)
	}
	if len(result.Schedule) != 0 {
		t.Errorf("non-amortizing run should not produce a schedule")
	}
}

func TestSimulateInvalidPayment(t *testing.T) {
	for _, payment := range []float64{0, -25} {
		if _, err := Simulate(Input{Principal: 5000, MonthlyPayment: payment, StartDate: simStart}); !errors.Is(err, ErrInvalidPayment) {
			t.Errorf("payment %v: expected ErrInvalidPayment, got %v", payment, err)
		}
	}
}

func TestSimulateZeroPrincipal(t *testing.T) {
	result, err := Simulate(Input{Principal: 0, MonthlyPayment: 100, StartDate: simStart})
	if err != nil {
		t.Fatalf("zero principal should not error, got %v", err)
	}
	if result.Months != 0 || result.PayoffDate != nil {
		t.Errorf("zero principal should yield an empty result, got %+v", result)
	}
}

func TestSimulateZeroRate(t *testing.T) {
	result, err := Simulate(Input{
		Principal:      1200,
		APRPercent:     0,
		MonthlyPayment: 100,
		StartDate:      simStart,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if result.Months != 12 {
		t.Errorf("Months = %d, expected 12", result.Months)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", result.TotalInterest)
	}
	if math.Abs(result.TotalPaid-1200) > 0.001 {
		t.Errorf("TotalPaid = %v, expected 1200", result.TotalPaid)
	}
}

func TestSimulateOneTimeExtra(t *testing.T) {
	result, err := Simulate(Input{
		Principal:              1000,
		APRPercent:             0,
		MonthlyPayment:         100,
		StartDate:              simStart,
		ExtraOneTime:           500,
		ExtraOneTimeMonthIndex: 2,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if result.Months != 5 {
		t.Errorf("Months = %d, expected 5", result.Months)
	}
	if result.Schedule[2].Extra != 500 {
		t.Errorf("month 3 Extra = %v, expected 500", result.Schedule[2].Extra)
	}
	if math.Abs(result.TotalPaid-1000) > 0.001 {
		t.Errorf("TotalPaid = %v, expected 1000", result.TotalPaid)
	}
}

func TestSimulatePaymentCappedAtAmountDue(t *testing.T) {
	result, err := Simulate(Input{
		Principal:      50,
		APRPercent:     0,
		MonthlyPayment: 100,
		StartDate:      simStart,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if result.Months != 1 {
		t.Fatalf("Months = %d, expected 1", result.Months)
	}
	if result.Schedule[0].Payment != 50 {
		t.Errorf("Payment = %v, expected 50 (capped at amount due)", result.Schedule[0].Payment)
	}
}

func TestSimulateMaxMonthsCap(t *testing.T) {
	result, err := Simulate(Input{
		Principal:      100000,
		APRPercent:     0,
		MonthlyPayment: 1,
		StartDate:      simStart,
		MaxMonths:      24,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	if result.Months != 24 {
		t.Errorf("Months = %d, expected the 24-month cap", result.Months)
	}
	if result.PayoffDate != nil {
		t.Errorf("capped run should have no payoff date")
	}
}

func TestSimulateDayOfMonthClamping(t *testing.T) {
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	result, err := Simulate(Input{
		Principal:      300,
		APRPercent:     0,
		MonthlyPayment: 100,
		StartDate:      start,
	})
	if err != nil {
		t.Fatalf("Simulate returned error: %v", err)
	}
	second := result.Schedule[1].Date
	if second.Month() != time.February || second.Day() != 28 {
		t.Errorf("second payment date = %v, expected Feb 28", second)
	}
	third := result.Schedule[2].Date
	if third.Month() != time.March || third.Day() != 31 {
		t.Errorf("third payment date = %v, expected Mar 31", third)
	}
}
