package ledger

import (
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		rows     []ExpenseRow
		expected float64
	}{
		{"Empty table", nil, 0},
		{"Single row", []ExpenseRow{{Expense: "Rent", MonthlyAmount: 1200}}, 1200},
		{"Multiple rows", []ExpenseRow{
			{Expense: "Rent", MonthlyAmount: 1200},
			{Expense: "Phone", MonthlyAmount: 45.50},
			{Expense: "Internet", MonthlyAmount: 60},
		}, 1305.50},
		{"Negative amounts clamp at read", []ExpenseRow{
			{Expense: "Rent", MonthlyAmount: 1200},
			{Expense: "Refund", MonthlyAmount: -100},
		}, 1200},
		{"NaN amounts clamp at read", []ExpenseRow{
			{Expense: "Broken", MonthlyAmount: math.NaN()},
			{Expense: "Rent", MonthlyAmount: 800},
		}, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.rows); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("Sum = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSumDebtsUsesMonthlyPayment(t *testing.T) {
	debts := []DebtRow{
		{Debt: "Car loan", Balance: 9000, APRPercent: 6.5, MonthlyPayment: 275},
		{Debt: "Credit card", Balance: 2500, APRPercent: 22.99, MonthlyPayment: 75},
	}
	if got := Sum(debts); math.Abs(got-350) > 0.001 {
		t.Errorf("Sum(debts) = %v, expected 350 (payments, not balances)", got)
	}
}

func TestSumByKeyword(t *testing.T) {
	rows := []ExpenseRow{
		{Expense: "Groceries", MonthlyAmount: 450},
		{Expense: "ELECTRIC bill", MonthlyAmount: 120},
		{Expense: "Natural  Gas", MonthlyAmount: 80},
		{Expense: "Dining out", MonthlyAmount: 200},
		{Expense: "Streaming", MonthlyAmount: 30},
	}

	tests := []struct {
		name     string
		keywords []string
		expected float64
	}{
		{"Essential keywords", EssentialKeywords, 650},
		{"Case-insensitive match", []string{"electric"}, 120},
		{"Whitespace-normalized match", []string{"natural gas"}, 80},
		{"No keywords", nil, 0},
		{"No matches", []string{"daycare"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumByKeyword(rows, tt.keywords); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("SumByKeyword = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchesEssentialKeyword(t *testing.T) {
	tests := []struct {
		name     string
		expense  string
		expected bool
	}{
		{"Groceries", "Groceries", true},
		{"Utilities substring", "Monthly utilities", true},
		{"Prescription", "Rx refills", true},
		{"Dining out", "Dining out", false},
		{"Gym", "Gym membership", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesEssentialKeyword(tt.expense); got != tt.expected {
				t.Errorf("MatchesEssentialKeyword(%q) = %v, expected %v", tt.expense, got, tt.expected)
			}
		})
	}
}

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()
	if len(tables.Income) == 0 || len(tables.Fixed) == 0 || len(tables.Essential) == 0 ||
		len(tables.NonEssential) == 0 || len(tables.Saving) == 0 || len(tables.Investing) == 0 ||
		len(tables.Assets) == 0 || len(tables.Liabilities) == 0 || len(tables.Debts) == 0 {
		t.Fatalf("default tables should seed every category")
	}

	// Seed rows are templates with zero amounts; the defaults must not imply
	// money the user never entered.
	if got := Sum(tables.Income); got != 0 {
		t.Errorf("default income sum = %v, expected 0", got)
	}
}
