package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmortenson/finance-dashboard/internal/amortize"
)

func TestScenarioRoundTrip(t *testing.T) {
	inputs := amortize.MortgageInputs{
		StartDate:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Principal:    320000,
		HomeValue:    400000,
		APRPercent:   6.25,
		Mode:         amortize.ModeTermBased,
		TermYears:    30,
		ExtraMonthly: 200,
		Taxes:        450,
		Insurance:    140,
		PMI:          110,
		HOA:          35,
	}
	analysis, err := amortize.AnalyzeMortgage(inputs)
	require.NoError(t, err)

	doc := ExportScenario("Forever home", inputs, analysis, time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Forever home", doc.ScenarioName)
	assert.Equal(t, "2026-08-28", doc.SavedAt)
	assert.Equal(t, "2026-03-01", doc.Inputs.StartDate)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	imported, err := ImportScenario(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, imported)

	// The imported inputs re-run to the same analysis.
	rerun, err := amortize.AnalyzeMortgage(imported.MortgageInputs(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, analysis.Summary, rerun.Summary)
}

func TestExportScenarioDefaultsName(t *testing.T) {
	inputs := amortize.MortgageInputs{
		StartDate:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		Principal:     1000,
		Mode:          amortize.ModeManualPayment,
		PaymentManual: 100,
	}
	analysis, err := amortize.AnalyzeMortgage(inputs)
	require.NoError(t, err)

	doc := ExportScenario("", inputs, analysis, time.Now())
	assert.Equal(t, DefaultScenarioName, doc.ScenarioName)
	// Nothing crosses a PMI threshold, so the date stays empty on the wire.
	assert.Equal(t, "", doc.Summary.PMIDropDate)
}

func TestImportScenarioTolerant(t *testing.T) {
	raw := []byte(`{
		"scenario_name": 42,
		"inputs": {
			"start_date": "not a date",
			"principal": "$250,000",
			"apr_pct": 6,
			"mode": "I know my monthly payment",
			"payment_manual": -100,
			"term_years": 30
		},
		"summary": "broken"
	}`)

	doc, err := ImportScenario(raw)
	require.NoError(t, err)

	assert.Equal(t, 250000.0, doc.Inputs.Principal)
	// Negative payment coerces to zero; the simulator rejects it later.
	assert.Equal(t, 0.0, doc.Inputs.PaymentManual)

	fallback := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fallback, doc.MortgageInputs(fallback).StartDate)
}

func TestImportScenarioMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"not JSON":      `]`,
		"no inputs key": `{"scenario_name": "x"}`,
		"inputs null":   `{"inputs": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ImportScenario([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
