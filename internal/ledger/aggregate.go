package ledger

import (
	"regexp"
	"strings"
)

// EssentialKeywords classifies legacy "variable expense" rows as essential.
// Snapshots written before the dashboard split variable expenses into
// explicit essential/non-essential tables carry a single variable table; on
// import those rows are classified by keyword so historical totals are
// preserved.
var EssentialKeywords = []string{
	"grocery", "groceries",
	"electric", "electricity", "natural gas", "water", "sewer", "trash", "garbage",
	"utility", "utilities",
	"internet", "wifi", "phone", "cell",
	"insurance", "medical", "health", "prescription", "rx", "medicine",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Sum adds the amount across all rows. Nil or empty tables sum to zero; it
// never fails.
func Sum[T LineItem](rows []T) float64 {
	total := 0.0
	for _, row := range rows {
		total += ClampAmount(row.ItemAmount())
	}
	return total
}

// SumByKeyword adds the amounts of rows whose name contains any of the given
// keywords. Matching is case-insensitive on whitespace-normalized names.
func SumByKeyword[T LineItem](rows []T, keywords []string) float64 {
	if len(rows) == 0 || len(keywords) == 0 {
		return 0
	}

	keys := make([]string, len(keywords))
	for i, k := range keywords {
		keys[i] = strings.ToLower(k)
	}

	total := 0.0
	for _, row := range rows {
		if matchesAnyKeyword(row.ItemName(), keys) {
			total += ClampAmount(row.ItemAmount())
		}
	}
	return total
}

// MatchesEssentialKeyword reports whether a row name classifies as essential
// under the legacy keyword scheme.
func MatchesEssentialKeyword(name string) bool {
	return matchesAnyKeyword(name, EssentialKeywords)
}

func matchesAnyKeyword(name string, lowerKeywords []string) bool {
	normalized := normalizeName(name)
	for _, k := range lowerKeywords {
		if strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}

func normalizeName(s string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}
