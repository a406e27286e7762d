// Package ledger defines the category tables a user edits on the dashboard
// and the aggregation helpers that reduce them to totals. Rows are typed per
// table kind and parse tolerantly at the boundary: malformed cells coerce to
// zero values rather than failing the table.
package ledger

import "encoding/json"

// LineItem is the read-side view of any category row: a display name and a
// monthly dollar amount. Aggregation operates on this view only.
type LineItem interface {
	ItemName() string
	ItemAmount() float64
}

// IncomeRow is one income source.
type IncomeRow struct {
	Source        string  `json:"Source"`
	MonthlyAmount float64 `json:"Monthly Amount"`
	Notes         string  `json:"Notes"`
}

func (r IncomeRow) ItemName() string    { return r.Source }
func (r IncomeRow) ItemAmount() float64 { return r.MonthlyAmount }

// UnmarshalJSON coerces each cell independently and never fails on a JSON
// object; a non-object row decodes to the zero row.
func (r *IncomeRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Source Text   `json:"Source"`
		Amount Amount `json:"Monthly Amount"`
		Notes  Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = IncomeRow{}
		return nil
	}
	*r = IncomeRow{Source: string(raw.Source), MonthlyAmount: float64(raw.Amount), Notes: string(raw.Notes)}
	return nil
}

// ExpenseRow is one expense line item; the same shape backs the fixed,
// essential, non-essential, and legacy variable tables.
type ExpenseRow struct {
	Expense       string  `json:"Expense"`
	MonthlyAmount float64 `json:"Monthly Amount"`
	Notes         string  `json:"Notes"`
}

func (r ExpenseRow) ItemName() string    { return r.Expense }
func (r ExpenseRow) ItemAmount() float64 { return r.MonthlyAmount }

func (r *ExpenseRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Expense Text   `json:"Expense"`
		Amount  Amount `json:"Monthly Amount"`
		Notes   Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = ExpenseRow{}
		return nil
	}
	*r = ExpenseRow{Expense: string(raw.Expense), MonthlyAmount: float64(raw.Amount), Notes: string(raw.Notes)}
	return nil
}

// BucketRow is one saving or investing contribution bucket.
type BucketRow struct {
	Bucket        string  `json:"Bucket"`
	MonthlyAmount float64 `json:"Monthly Amount"`
	Notes         string  `json:"Notes"`
}

func (r BucketRow) ItemName() string    { return r.Bucket }
func (r BucketRow) ItemAmount() float64 { return r.MonthlyAmount }

func (r *BucketRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Bucket Text   `json:"Bucket"`
		Amount Amount `json:"Monthly Amount"`
		Notes  Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = BucketRow{}
		return nil
	}
	*r = BucketRow{Bucket: string(raw.Bucket), MonthlyAmount: float64(raw.Amount), Notes: string(raw.Notes)}
	return nil
}

// AssetRow is one balance-sheet asset.
type AssetRow struct {
	Asset string  `json:"Asset"`
	Value float64 `json:"Value"`
	Notes string  `json:"Notes"`
}

func (r AssetRow) ItemName() string    { return r.Asset }
func (r AssetRow) ItemAmount() float64 { return r.Value }

func (r *AssetRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Asset Text   `json:"Asset"`
		Value Amount `json:"Value"`
		Notes Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = AssetRow{}
		return nil
	}
	*r = AssetRow{Asset: string(raw.Asset), Value: float64(raw.Value), Notes: string(raw.Notes)}
	return nil
}

// LiabilityRow is one balance-sheet liability.
type LiabilityRow struct {
	Liability string  `json:"Liability"`
	Value     float64 `json:"Value"`
	Notes     string  `json:"Notes"`
}

func (r LiabilityRow) ItemName() string    { return r.Liability }
func (r LiabilityRow) ItemAmount() float64 { return r.Value }

func (r *LiabilityRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Liability Text   `json:"Liability"`
		Value     Amount `json:"Value"`
		Notes     Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = LiabilityRow{}
		return nil
	}
	*r = LiabilityRow{Liability: string(raw.Liability), Value: float64(raw.Value), Notes: string(raw.Notes)}
	return nil
}

// DebtRow is one debt with its balance, rate, and stated minimum payment.
type DebtRow struct {
	Debt           string  `json:"Debt"`
	Balance        float64 `json:"Balance"`
	APRPercent     float64 `json:"APR %"`
	MonthlyPayment float64 `json:"Monthly Payment"`
	Notes          string  `json:"Notes"`
}

func (r DebtRow) ItemName() string { return r.Debt }

// ItemAmount reports the monthly payment, which is what cash-flow aggregation
// cares about; balance and APR feed the payoff estimator instead.
func (r DebtRow) ItemAmount() float64 { return r.MonthlyPayment }

func (r *DebtRow) UnmarshalJSON(data []byte) error {
	var raw struct {
		Debt    Text   `json:"Debt"`
		Balance Amount `json:"Balance"`
		APR     Amount `json:"APR %"`
		Payment Amount `json:"Monthly Payment"`
		Notes   Text   `json:"Notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*r = DebtRow{}
		return nil
	}
	*r = DebtRow{
		Debt:           string(raw.Debt),
		Balance:        float64(raw.Balance),
		APRPercent:     float64(raw.APR),
		MonthlyPayment: float64(raw.Payment),
		Notes:          string(raw.Notes),
	}
	return nil
}

// Tables holds every category table in the dashboard. The whole struct is
// owned by the hosting shell and passed by value into the calculation
// functions; the engine holds no state between calls.
type Tables struct {
	Income       []IncomeRow
	Fixed        []ExpenseRow
	Essential    []ExpenseRow
	NonEssential []ExpenseRow
	Saving       []BucketRow
	Investing    []BucketRow
	Assets       []AssetRow
	Liabilities  []LiabilityRow
	Debts        []DebtRow
}

// Sanitize returns a copy of the tables with every numeric cell clamped to
// the non-negative finite range. Sanitizing twice is a no-op.
func (t Tables) Sanitize() Tables {
	out := Tables{
		Income:       append([]IncomeRow(nil), t.Income...),
		Fixed:        append([]ExpenseRow(nil), t.Fixed...),
		Essential:    append([]ExpenseRow(nil), t.Essential...),
		NonEssential: append([]ExpenseRow(nil), t.NonEssential...),
		Saving:       append([]BucketRow(nil), t.Saving...),
		Investing:    append([]BucketRow(nil), t.Investing...),
		Assets:       append([]AssetRow(nil), t.Assets...),
		Liabilities:  append([]LiabilityRow(nil), t.Liabilities...),
		Debts:        append([]DebtRow(nil), t.Debts...),
	}
	for i := range out.Income {
		out.Income[i].MonthlyAmount = ClampAmount(out.Income[i].MonthlyAmount)
	}
	for i := range out.Fixed {
		out.Fixed[i].MonthlyAmount = ClampAmount(out.Fixed[i].MonthlyAmount)
	}
	for i := range out.Essential {
		out.Essential[i].MonthlyAmount = ClampAmount(out.Essential[i].MonthlyAmount)
	}
	for i := range out.NonEssential {
		out.NonEssential[i].MonthlyAmount = ClampAmount(out.NonEssential[i].MonthlyAmount)
	}
	for i := range out.Saving {
		out.Saving[i].MonthlyAmount = ClampAmount(out.Saving[i].MonthlyAmount)
	}
	for i := range out.Investing {
		out.Investing[i].MonthlyAmount = ClampAmount(out.Investing[i].MonthlyAmount)
	}
	for i := range out.Assets {
		out.Assets[i].Value = ClampAmount(out.Assets[i].Value)
	}
	for i := range out.Liabilities {
		out.Liabilities[i].Value = ClampAmount(out.Liabilities[i].Value)
	}
	for i := range out.Debts {
		out.Debts[i].Balance = ClampAmount(out.Debts[i].Balance)
		out.Debts[i].APRPercent = ClampAmount(out.Debts[i].APRPercent)
		out.Debts[i].MonthlyPayment = ClampAmount(out.Debts[i].MonthlyPayment)
	}
	return out
}
