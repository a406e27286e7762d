package snapshot

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/internal/metrics"
)

// ErrMalformed means the payload is not a snapshot at all: not a JSON object,
// or missing the tables key. Anything recognizable imports tolerantly instead.
var ErrMalformed = errors.New("snapshot: document is not a recognizable snapshot")

// Export builds the full snapshot document from the current tables, settings,
// and a freshly computed metrics bundle. Every table is written in full.
func Export(tables ledger.Tables, settings metrics.Settings, bundle metrics.Bundle, generatedAt time.Time) Document {
	return Document{
		SchemaVersion: SchemaVersionCurrent,
		GeneratedAt:   generatedAt,
		MonthLabel:    settings.MonthLabel,
		Settings: SettingsDoc{
			IncomeIs:   settings.IncomeIs,
			TaxRatePct: settings.TaxRatePct,
			GrossMode:  settings.GrossMode,
		},
		GrossBreakdown: BreakdownDoc{
			Taxes:              settings.Breakdown.Taxes,
			RetirementEmployee: settings.Breakdown.RetirementEmployee,
			CompanyMatch:       settings.Breakdown.CompanyMatch,
			Benefits:           settings.Breakdown.Benefits,
			OtherSSI:           settings.Breakdown.OtherSSI,
		},
		CashFlow: CashFlowDoc{
			TotalIncomeEntered:       bundle.TotalIncome,
			EstimatedTaxes:           bundle.EstimatedTax,
			ManualDeductionsTotal:    bundle.ManualDeductionsTotal,
			NetIncome:                bundle.NetIncome,
			FixedExpenses:            bundle.FixedTotal,
			EssentialExpenses:        bundle.EssentialTotal,
			NonessentialExpenses:     bundle.NonessentialTotal,
			DebtPaymentsMonthly:      bundle.TotalMonthlyDebtPayments,
			TotalExpenses:            bundle.ExpensesTotal,
			SavingMonthly:            bundle.SavingTotal,
			InvestingMonthly:         bundle.InvestingDisplay,
			InvestingManualRetire:    bundle.EmployeeRetirement,
			InvestingCompanyMatch:    bundle.CompanyMatch,
			SavingInvestingCashflow:  bundle.SavingTotal + bundle.InvestingCashflow,
			InvestingTakehomeOnly:    bundle.InvestingCashflow,
			LeftOver:                 bundle.Remaining,
			SafeToSpendWeekly:        bundle.SafeToSpendWeekly,
			SafeToSpendDaily:         bundle.SafeToSpendDaily,
			RetirementEmployeeMatch:  bundle.TotalRetirementContrib,
			PaycheckBreakdownEnabled: settings.UsePaycheckBreakdown,
		},
		NetWorth: NetWorthDoc{
			AssetsTotal:      bundle.TotalAssets,
			LiabilitiesTotal: bundle.TotalLiabilities,
			NetWorth:         bundle.NetWorth,
		},
		Tables: TablesDoc{
			Income:       tables.Income,
			Fixed:        tables.Fixed,
			Essential:    tables.Essential,
			NonEssential: tables.NonEssential,
			Saving:       tables.Saving,
			Investing:    tables.Investing,
			Assets:       tables.Assets,
			Liabilities:  tables.Liabilities,
			Debts:        tables.Debts,
		},
		EmergencyMinimum: EmergencyDoc{
			Monthly:              bundle.EmergencyMinimumMonthly,
			FixedIncluded:        bundle.FixedTotal,
			EssentialIncluded:    bundle.EssentialTotal,
			DebtMinimumsIncluded: bundle.TotalMonthlyDebtPayments,
		},
	}
}

// importDoc shadows Document for reading: every section is raw so one bad
// section degrades alone instead of failing the whole import.
type importDoc struct {
	SchemaVersion *int            `json:"schema_version"`
	MonthLabel    *ledger.Text    `json:"month_label"`
	Settings      json.RawMessage `json:"settings"`
	Breakdown     json.RawMessage `json:"gross_breakdown_optional"`
	CashFlow      json.RawMessage `json:"monthly_cash_flow"`
	Tables        json.RawMessage `json:"tables"`
}

type importTables struct {
	Income       json.RawMessage `json:"income"`
	Fixed        json.RawMessage `json:"fixed_expenses"`
	Essential    json.RawMessage `json:"essential_expenses"`
	NonEssential json.RawMessage `json:"nonessential_expenses"`
	Variable     json.RawMessage `json:"variable_expenses"`
	Saving       json.RawMessage `json:"saving"`
	Investing    json.RawMessage `json:"investing"`
	Assets       json.RawMessage `json:"assets"`
	Liabilities  json.RawMessage `json:"liabilities"`
	Debts        json.RawMessage `json:"debt_details"`
}

type importSettings struct {
	IncomeIs   *ledger.Text   `json:"income_is"`
	TaxRatePct *ledger.Amount `json:"tax_rate_pct"`
	GrossMode  *ledger.Text   `json:"gross_mode"`
}

type importBreakdown struct {
	Taxes              *ledger.Amount `json:"taxes"`
	RetirementEmployee *ledger.Amount `json:"retirement_employee"`
	CompanyMatch       *ledger.Amount `json:"company_match"`
	Benefits           *ledger.Amount `json:"benefits"`
	OtherSSI           *ledger.Amount `json:"other_ssi"`
}

type importCashFlow struct {
	PaycheckBreakdownEnabled *ledger.Flag `json:"paycheck_breakdown_enabled"`
}

// Import merges a snapshot document over the current tables and settings.
// Unknown keys are ignored; missing tables and settings keep their current
// values; every accepted table is sanitized. A legacy document's single
// variable-expenses table is split into essential and non-essential rows by
// keyword. The only failure is ErrMalformed.
func Import(raw []byte, tables ledger.Tables, settings metrics.Settings) (ledger.Tables, metrics.Settings, error) {
	var doc importDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return tables, settings, ErrMalformed
	}
	if !rawPresent(doc.Tables) {
		return tables, settings, ErrMalformed
	}

	var docTables importTables
	if err := json.Unmarshal(doc.Tables, &docTables); err != nil {
		return tables, settings, ErrMalformed
	}

	if doc.MonthLabel != nil {
		settings.MonthLabel = string(*doc.MonthLabel)
	}
	if rawPresent(doc.Settings) {
		var s importSettings
		if err := json.Unmarshal(doc.Settings, &s); err == nil {
			if s.IncomeIs != nil {
				settings.IncomeIs = string(*s.IncomeIs)
			}
			if s.GrossMode != nil {
				settings.GrossMode = string(*s.GrossMode)
			}
			if s.TaxRatePct != nil {
				settings.TaxRatePct = float64(*s.TaxRatePct)
			}
		}
	}
	if rawPresent(doc.Breakdown) {
		var b importBreakdown
		if err := json.Unmarshal(doc.Breakdown, &b); err == nil {
			if b.Taxes != nil {
				settings.Breakdown.Taxes = float64(*b.Taxes)
			}
			if b.RetirementEmployee != nil {
				settings.Breakdown.RetirementEmployee = float64(*b.RetirementEmployee)
			}
			if b.CompanyMatch != nil {
				settings.Breakdown.CompanyMatch = float64(*b.CompanyMatch)
			}
			if b.Benefits != nil {
				settings.Breakdown.Benefits = float64(*b.Benefits)
			}
			if b.OtherSSI != nil {
				settings.Breakdown.OtherSSI = float64(*b.OtherSSI)
			}
		}
	}
	if rawPresent(doc.CashFlow) {
		var cf importCashFlow
		if err := json.Unmarshal(doc.CashFlow, &cf); err == nil && cf.PaycheckBreakdownEnabled != nil {
			settings.UsePaycheckBreakdown = bool(*cf.PaycheckBreakdownEnabled)
		}
	}

	tables.Income = decodeRows(docTables.Income, tables.Income)
	tables.Fixed = decodeRows(docTables.Fixed, tables.Fixed)
	tables.Saving = decodeRows(docTables.Saving, tables.Saving)
	tables.Investing = decodeRows(docTables.Investing, tables.Investing)
	tables.Assets = decodeRows(docTables.Assets, tables.Assets)
	tables.Liabilities = decodeRows(docTables.Liabilities, tables.Liabilities)
	tables.Debts = decodeRows(docTables.Debts, tables.Debts)

	if isLegacy(doc, docTables) {
		var variable []ledger.ExpenseRow
		if err := json.Unmarshal(docTables.Variable, &variable); err == nil {
			tables.Essential, tables.NonEssential = splitVariable(variable)
		}
	} else {
		tables.Essential = decodeRows(docTables.Essential, tables.Essential)
		tables.NonEssential = decodeRows(docTables.NonEssential, tables.NonEssential)
	}

	return tables.Sanitize(), settings, nil
}

// isLegacy decides the document's schema version. An explicit tag wins; with
// no tag, a variable_expenses table and no essential_expenses table marks the
// old shape.
func isLegacy(doc importDoc, tables importTables) bool {
	if doc.SchemaVersion != nil {
		return *doc.SchemaVersion <= SchemaVersionLegacy
	}
	return rawPresent(tables.Variable) && !rawPresent(tables.Essential)
}

// splitVariable classifies legacy variable-expense rows into the explicit
// essential and non-essential tables by keyword.
func splitVariable(variable []ledger.ExpenseRow) (essential, nonessential []ledger.ExpenseRow) {
	for _, row := range variable {
		if ledger.MatchesEssentialKeyword(row.Expense) {
			essential = append(essential, row)
		} else {
			nonessential = append(nonessential, row)
		}
	}
	return essential, nonessential
}

// decodeRows replaces current with the decoded table when the key is present
// and decodable as an array; otherwise the current rows stay. Individual row
// cells coerce tolerantly inside the row types.
func decodeRows[T any](raw json.RawMessage, current []T) []T {
	if !rawPresent(raw) {
		return current
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return current
	}
	return rows
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
