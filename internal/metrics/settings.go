package metrics

import (
	"time"

	"github.com/kmortenson/finance-dashboard/pkg/datetime"
)

// Income interpretation choices. The dashboard stores the display strings
// verbatim so snapshots stay compatible across versions.
const (
	IncomeIsNet   = "Net (after tax)"
	IncomeIsGross = "Gross (before tax)"

	GrossModeEstimate = "Estimate (tax rate)"
	GrossModeManual   = "Manual deductions"
)

// Breakdown carries the user's per-paycheck deductions when they entered
// gross income. CompanyMatch is tracked for the investing display only; it
// never reduces take-home pay.
type Breakdown struct {
	Taxes              float64
	RetirementEmployee float64
	CompanyMatch       float64
	Benefits           float64
	OtherSSI           float64
}

// DeductionsTotal is what actually comes out of a paycheck. The company
// match is excluded.
func (b Breakdown) DeductionsTotal() float64 {
	return b.Taxes + b.RetirementEmployee + b.Benefits + b.OtherSSI
}

// Settings holds the dashboard-level options persisted alongside the tables.
type Settings struct {
	MonthLabel           string
	IncomeIs             string
	GrossMode            string
	TaxRatePct           float64
	UsePaycheckBreakdown bool
	Breakdown            Breakdown
}

// DefaultSettings returns the options a new dashboard starts with, labeled
// with the current month.
func DefaultSettings(now time.Time) Settings {
	return Settings{
		MonthLabel: datetime.MonthLabel(now),
		IncomeIs:   IncomeIsNet,
		GrossMode:  GrossModeEstimate,
	}
}
