package debts

import (
	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/mathutil"
)

// Burden returns the share of net income consumed by minimum debt payments,
// or nil when net income is not positive.
func Burden(totalMonthlyDebtPayments, netIncome float64) *float64 {
	return mathutil.Percentage(totalMonthlyDebtPayments, netIncome)
}

// BurdenBand maps a burden percentage to its advisory display band. The
// thresholds are guidance only, not state transitions.
func BurdenBand(pct float64) string {
	switch {
	case pct < constants.DebtBurdenLightMax:
		return "light"
	case pct < constants.DebtBurdenManageableMax:
		return "manageable"
	case pct < constants.DebtBurdenHeavyMax:
		return "heavy"
	default:
		return "severe"
	}
}
