// Package debts orders a set of debts for payoff focus and estimates an
// aggregate payoff timeline by simulating each debt independently at its
// stated minimum payment.
package debts

import (
	"sort"

	"github.com/kmortenson/finance-dashboard/internal/ledger"
)

// Strategy selects the payoff ordering.
type Strategy string

const (
	// Avalanche targets the highest APR first; saves the most interest.
	Avalanche Strategy = "avalanche"

	// Snowball targets the smallest balance first; builds momentum.
	Snowball Strategy = "snowball"
)

// Rank returns the debts ordered by the given strategy. Avalanche sorts by
// APR descending with balance ascending as the tie-break; snowball sorts by
// balance ascending with APR descending as the tie-break. The input slice is
// not modified.
func Rank(debts []ledger.DebtRow, strategy Strategy) []ledger.DebtRow {
	ordered := append([]ledger.DebtRow(nil), debts...)

	switch strategy {
	case Snowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Balance != ordered[j].Balance {
				return ordered[i].Balance < ordered[j].Balance
			}
			return ordered[i].APRPercent > ordered[j].APRPercent
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].APRPercent != ordered[j].APRPercent {
				return ordered[i].APRPercent > ordered[j].APRPercent
			}
			return ordered[i].Balance < ordered[j].Balance
		})
	}

	return ordered
}
