// Package snapshot serializes the dashboard state to and from its JSON
// interchange document. Export writes the full current schema; import is
// tolerant of older and newer documents, ignoring unknown keys and keeping
// in-memory values for anything a document omits.
package snapshot

import (
	"time"

	"github.com/kmortenson/finance-dashboard/internal/ledger"
)

// Schema versions. Version 1 documents carry a single variable_expenses
// table; version 2 splits it into essential and non-essential tables.
const (
	SchemaVersionLegacy  = 1
	SchemaVersionCurrent = 2
)

// Document is the full snapshot as written by Export. Field names are the
// stable wire schema and never change meaning between versions.
type Document struct {
	SchemaVersion    int          `json:"schema_version"`
	GeneratedAt      time.Time    `json:"generated_at"`
	MonthLabel       string       `json:"month_label"`
	Settings         SettingsDoc  `json:"settings"`
	GrossBreakdown   BreakdownDoc `json:"gross_breakdown_optional"`
	CashFlow         CashFlowDoc  `json:"monthly_cash_flow"`
	NetWorth         NetWorthDoc  `json:"net_worth"`
	Tables           TablesDoc    `json:"tables"`
	EmergencyMinimum EmergencyDoc `json:"emergency_minimum"`
}

// SettingsDoc holds the income-interpretation options.
type SettingsDoc struct {
	IncomeIs   string  `json:"income_is"`
	TaxRatePct float64 `json:"tax_rate_pct"`
	GrossMode  string  `json:"gross_mode"`
}

// BreakdownDoc holds the manual per-paycheck deduction amounts.
type BreakdownDoc struct {
	Taxes              float64 `json:"taxes"`
	RetirementEmployee float64 `json:"retirement_employee"`
	CompanyMatch       float64 `json:"company_match"`
	Benefits           float64 `json:"benefits"`
	OtherSSI           float64 `json:"other_ssi"`
}

// CashFlowDoc is the recomputed metrics summary embedded in an export for
// display convenience. Import never reads it back except for the
// paycheck_breakdown_enabled flag; metrics are always recomputed fresh.
type CashFlowDoc struct {
	TotalIncomeEntered       float64 `json:"total_income_entered"`
	EstimatedTaxes           float64 `json:"estimated_taxes"`
	ManualDeductionsTotal    float64 `json:"manual_deductions_total"`
	NetIncome                float64 `json:"net_income"`
	FixedExpenses            float64 `json:"fixed_expenses"`
	EssentialExpenses        float64 `json:"essential_expenses"`
	NonessentialExpenses     float64 `json:"nonessential_expenses"`
	DebtPaymentsMonthly      float64 `json:"debt_payments_monthly"`
	TotalExpenses            float64 `json:"total_expenses"`
	SavingMonthly            float64 `json:"saving_monthly"`
	InvestingMonthly         float64 `json:"investing_monthly"`
	InvestingManualRetire    float64 `json:"investing_manual_retirement"`
	InvestingCompanyMatch    float64 `json:"investing_company_match"`
	SavingInvestingCashflow  float64 `json:"saving_and_investing_cashflow_total"`
	InvestingTakehomeOnly    float64 `json:"investing_takehome_only"`
	LeftOver                 float64 `json:"left_over"`
	SafeToSpendWeekly        float64 `json:"safe_to_spend_weekly"`
	SafeToSpendDaily         float64 `json:"safe_to_spend_daily"`
	RetirementEmployeeMatch  float64 `json:"retirement_total_employee_plus_match"`
	PaycheckBreakdownEnabled bool    `json:"paycheck_breakdown_enabled"`
}

// NetWorthDoc is the balance-sheet summary.
type NetWorthDoc struct {
	AssetsTotal      float64 `json:"assets_total"`
	LiabilitiesTotal float64 `json:"liabilities_total"`
	NetWorth         float64 `json:"net_worth"`
}

// TablesDoc carries every category table in full. Row lists, not deltas.
type TablesDoc struct {
	Income       []ledger.IncomeRow    `json:"income"`
	Fixed        []ledger.ExpenseRow   `json:"fixed_expenses"`
	Essential    []ledger.ExpenseRow   `json:"essential_expenses"`
	NonEssential []ledger.ExpenseRow   `json:"nonessential_expenses"`
	Saving       []ledger.BucketRow    `json:"saving"`
	Investing    []ledger.BucketRow    `json:"investing"`
	Assets       []ledger.AssetRow     `json:"assets"`
	Liabilities  []ledger.LiabilityRow `json:"liabilities"`
	Debts        []ledger.DebtRow      `json:"debt_details"`
}

// EmergencyDoc breaks the emergency-fund floor into its components.
type EmergencyDoc struct {
	Monthly              float64 `json:"monthly"`
	FixedIncluded        float64 `json:"fixed_included"`
	EssentialIncluded    float64 `json:"essential_included"`
	DebtMinimumsIncluded float64 `json:"debt_minimums_included"`
}
