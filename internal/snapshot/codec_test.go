package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/internal/metrics"
)

func stateForExport() (ledger.Tables, metrics.Settings) {
	tables := ledger.Tables{
		Income: []ledger.IncomeRow{
			{Source: "Paycheck 1", MonthlyAmount: 4200, Notes: "biweekly"},
		},
		Fixed: []ledger.ExpenseRow{
			{Expense: "Rent", MonthlyAmount: 1600},
		},
		Essential: []ledger.ExpenseRow{
			{Expense: "Groceries", MonthlyAmount: 450},
		},
		NonEssential: []ledger.ExpenseRow{
			{Expense: "Dining out", MonthlyAmount: 180},
		},
		Saving: []ledger.BucketRow{
			{Bucket: "Emergency fund", MonthlyAmount: 300},
		},
		Investing: []ledger.BucketRow{
			{Bucket: "Roth IRA", MonthlyAmount: 500},
		},
		Assets: []ledger.AssetRow{
			{Asset: "Checking", Value: 8000},
		},
		Liabilities: []ledger.LiabilityRow{
			{Liability: "Car loan", Value: 7000},
		},
		Debts: []ledger.DebtRow{
			{Debt: "Car loan", Balance: 7000, APRPercent: 5.9, MonthlyPayment: 220},
		},
	}
	settings := metrics.Settings{
		MonthLabel: "August 2026",
		IncomeIs:   metrics.IncomeIsGross,
		GrossMode:  metrics.GrossModeManual,
		TaxRatePct: 22,
		Breakdown:  metrics.Breakdown{Taxes: 800, RetirementEmployee: 300, CompanyMatch: 150},
	}
	settings.UsePaycheckBreakdown = true
	return tables, settings
}

func TestExportImportRoundTrip(t *testing.T) {
	tables, settings := stateForExport()
	bundle := metrics.Compute(tables, settings)
	generatedAt := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	doc := Export(tables, settings, bundle, generatedAt)
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	gotTables, gotSettings, err := Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
	require.NoError(t, err)

	assert.Equal(t, tables, gotTables)
	assert.Equal(t, settings, gotSettings)

	// A second export of the imported state differs only in generated_at.
	again := Export(gotTables, gotSettings, metrics.Compute(gotTables, gotSettings), generatedAt)
	assert.Equal(t, doc, again)
}

func TestExportSchema(t *testing.T) {
	tables, settings := stateForExport()
	bundle := metrics.Compute(tables, settings)
	doc := Export(tables, settings, bundle, time.Now())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"schema_version", "generated_at", "month_label", "settings",
		"gross_breakdown_optional", "monthly_cash_flow", "net_worth",
		"tables", "emergency_minimum",
	} {
		assert.Contains(t, decoded, key)
	}

	var tablesMap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["tables"], &tablesMap))
	for _, key := range []string{
		"income", "fixed_expenses", "essential_expenses", "nonessential_expenses",
		"saving", "investing", "assets", "liabilities", "debt_details",
	} {
		assert.Contains(t, tablesMap, key)
	}

	assert.Equal(t, SchemaVersionCurrent, doc.SchemaVersion)
	assert.Equal(t, bundle.EmergencyMinimumMonthly, doc.EmergencyMinimum.Monthly)
	assert.Equal(t, bundle.Remaining, doc.CashFlow.LeftOver)
	assert.Equal(t, bundle.InvestingDisplay, doc.CashFlow.InvestingMonthly)
}

func TestImportMissingTableKeepsCurrent(t *testing.T) {
	current := ledger.DefaultTables()
	raw := []byte(`{
		"tables": {
			"income": [{"Source": "Contract work", "Monthly Amount": 2500}]
		}
	}`)

	tables, _, err := Import(raw, current, metrics.DefaultSettings(time.Now()))
	require.NoError(t, err)

	require.Len(t, tables.Income, 1)
	assert.Equal(t, "Contract work", tables.Income[0].Source)
	// Tables the document omits keep the in-memory rows.
	assert.Equal(t, current.Essential, tables.Essential)
	assert.Equal(t, current.Debts, tables.Debts)
}

func TestImportLegacyVariableExpenses(t *testing.T) {
	raw := []byte(`{
		"tables": {
			"income": [],
			"variable_expenses": [
				{"Expense": "Groceries", "Monthly Amount": 400},
				{"Expense": "Electric bill", "Monthly Amount": 90},
				{"Expense": "Dining out", "Monthly Amount": 150},
				{"Expense": "Hobbies", "Monthly Amount": 60}
			]
		}
	}`)

	tables, _, err := Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
	require.NoError(t, err)

	require.Len(t, tables.Essential, 2)
	assert.Equal(t, "Groceries", tables.Essential[0].Expense)
	assert.Equal(t, "Electric bill", tables.Essential[1].Expense)
	require.Len(t, tables.NonEssential, 2)
	assert.Equal(t, "Dining out", tables.NonEssential[0].Expense)
	assert.Equal(t, "Hobbies", tables.NonEssential[1].Expense)
}

func TestImportExplicitVersionTagWins(t *testing.T) {
	// A v2 document may still carry a stray variable_expenses key; the tag
	// says to ignore it.
	raw := []byte(`{
		"schema_version": 2,
		"tables": {
			"essential_expenses": [{"Expense": "Water", "Monthly Amount": 40}],
			"variable_expenses": [{"Expense": "Groceries", "Monthly Amount": 999}]
		}
	}`)

	tables, _, err := Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
	require.NoError(t, err)
	require.Len(t, tables.Essential, 1)
	assert.Equal(t, "Water", tables.Essential[0].Expense)
}

func TestImportMalformed(t *testing.T) {
	defaults := ledger.DefaultTables()
	settings := metrics.DefaultSettings(time.Now())

	for name, raw := range map[string]string{
		"not JSON":       `{{{`,
		"not an object":  `[1, 2, 3]`,
		"no tables key":  `{"month_label": "August 2026"}`,
		"tables not map": `{"tables": [1, 2]}`,
		"tables is null": `{"tables": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			tables, gotSettings, err := Import([]byte(raw), defaults, settings)
			assert.ErrorIs(t, err, ErrMalformed)
			// A failed import leaves state untouched.
			assert.Equal(t, defaults, tables)
			assert.Equal(t, settings, gotSettings)
		})
	}
}

func TestImportToleratesJunk(t *testing.T) {
	raw := []byte(`{
		"some_future_key": {"nested": true},
		"settings": {"income_is": "Gross (before tax)", "tax_rate_pct": "22%-ish", "unknown": 1},
		"monthly_cash_flow": {"paycheck_breakdown_enabled": "true"},
		"tables": {
			"income": [
				{"Source": "Paycheck 1", "Monthly Amount": "$3,000.00", "id": 7},
				"garbage row"
			],
			"saving": "not an array",
			"debt_details": [
				{"Debt": "Card", "Balance": 1000, "APR %": 20, "Monthly Payment": -60}
			]
		}
	}`)

	tables, settings, err := Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
	require.NoError(t, err)

	require.Len(t, tables.Income, 2)
	assert.Equal(t, 3000.0, tables.Income[0].MonthlyAmount)
	// A non-object row degrades to an empty row instead of failing the table.
	assert.Equal(t, ledger.IncomeRow{}, tables.Income[1])
	// An undecodable table keeps the current rows.
	assert.Equal(t, ledger.DefaultTables().Saving, tables.Saving)
	// Negative payments are clamped by sanitation.
	assert.Equal(t, 0.0, tables.Debts[0].MonthlyPayment)

	assert.Equal(t, metrics.IncomeIsGross, settings.IncomeIs)
	// Unparseable tax rate coerces to zero rather than failing.
	assert.Equal(t, 0.0, settings.TaxRatePct)
	assert.True(t, settings.UsePaycheckBreakdown)
}

func TestImportSettingsMerge(t *testing.T) {
	current := metrics.DefaultSettings(time.Now())
	current.TaxRatePct = 18

	raw := []byte(`{
		"month_label": "July 2026",
		"settings": {"gross_mode": "Manual deductions"},
		"gross_breakdown_optional": {"taxes": 750, "company_match": 100},
		"tables": {}
	}`)

	_, settings, err := Import(raw, ledger.DefaultTables(), current)
	require.NoError(t, err)

	assert.Equal(t, "July 2026", settings.MonthLabel)
	assert.Equal(t, metrics.GrossModeManual, settings.GrossMode)
	// Fields the document omits keep their current values.
	assert.Equal(t, 18.0, settings.TaxRatePct)
	assert.Equal(t, current.IncomeIs, settings.IncomeIs)
	assert.Equal(t, 750.0, settings.Breakdown.Taxes)
	assert.Equal(t, 100.0, settings.Breakdown.CompanyMatch)
	assert.Equal(t, 0.0, settings.Breakdown.Benefits)
}
