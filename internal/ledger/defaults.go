package ledger

// DefaultTables returns the seed row set a new dashboard starts with. Every
// amount is zero; the rows are prompts, not data.
func DefaultTables() Tables {
	return Tables{
		Income: []IncomeRow{
			{Source: "Paycheck 1"},
			{Source: "Paycheck 2"},
		},
		Fixed: []ExpenseRow{
			{Expense: "Mortgage/Rent"},
			{Expense: "Car payment"},
			{Expense: "Car insurance"},
			{Expense: "Phone"},
			{Expense: "Internet"},
		},
		Essential: []ExpenseRow{
			{Expense: "Utilities"},
			{Expense: "Groceries"},
			{Expense: "Gas/Transit"},
			{Expense: "Prescriptions"},
		},
		NonEssential: []ExpenseRow{
			{Expense: "Dining out"},
			{Expense: "Subscriptions"},
			{Expense: "Gym/Fitness"},
			{Expense: "Pet Expenses"},
			{Expense: "Other"},
		},
		Saving: []BucketRow{
			{Bucket: "Emergency fund"},
			{Bucket: "Entertainment"},
			{Bucket: "Travel"},
			{Bucket: "Gifts"},
			{Bucket: "Cash savings"},
		},
		Investing: []BucketRow{
			{Bucket: "Brokerage"},
			{Bucket: "401k"},
			{Bucket: "403b"},
			{Bucket: "Traditional IRA"},
			{Bucket: "Roth IRA"},
			{Bucket: "529"},
			{Bucket: "HSA"},
		},
		Assets: []AssetRow{
			{Asset: "Checking"},
			{Asset: "Savings"},
			{Asset: "HYSA"},
			{Asset: "Brokerage"},
			{Asset: "Retirement"},
			{Asset: "Value of Home (minus debt)"},
			{Asset: "Value of Vehicle (minus debt)"},
		},
		Liabilities: []LiabilityRow{
			{Liability: "Mortgage"},
			{Liability: "Car loan"},
		},
		Debts: []DebtRow{
			{Debt: "Car loan"},
			{Debt: "Credit card"},
			{Debt: "Student loan"},
			{Debt: "Personal loan"},
			{Debt: "Medical debt"},
			{Debt: "HELOC"},
		},
	}
}
