package snapshot

import (
	"encoding/json"
	"time"

	"github.com/kmortenson/finance-dashboard/internal/amortize"
	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/pkg/constants"
)

// DefaultScenarioName labels a saved mortgage scenario when the user left the
// name blank.
const DefaultScenarioName = "My mortgage"

// ScenarioDocument is the persisted mortgage calculator state: the inputs
// needed to re-run it plus the summary from when it was saved. Dates travel as
// "2006-01-02" strings; absent dates are empty.
type ScenarioDocument struct {
	ScenarioName string          `json:"scenario_name"`
	SavedAt      string          `json:"saved_at"`
	Inputs       ScenarioInputs  `json:"inputs"`
	Summary      ScenarioSummary `json:"summary"`
}

// ScenarioInputs mirrors amortize.MortgageInputs on the wire.
type ScenarioInputs struct {
	StartDate     string  `json:"start_date"`
	Principal     float64 `json:"principal"`
	HomeValue     float64 `json:"home_value"`
	APRPercent    float64 `json:"apr_pct"`
	Mode          string  `json:"mode"`
	TermYears     int     `json:"term_years"`
	PaymentManual float64 `json:"payment_manual"`
	ExtraMonthly  float64 `json:"extra_monthly"`
	ExtraOneTime  float64 `json:"extra_one_time"`
	Taxes         float64 `json:"taxes"`
	Insurance     float64 `json:"insurance"`
	PMI           float64 `json:"pmi"`
	HOA           float64 `json:"hoa"`
}

// ScenarioSummary is display-only on import; re-running the simulation from
// the inputs is the source of truth.
type ScenarioSummary struct {
	PayoffDate        string  `json:"payoff_date"`
	Months            int     `json:"months"`
	TotalInterest     float64 `json:"total_interest"`
	TotalPaid         float64 `json:"total_paid"`
	BaselineMonths    int     `json:"baseline_months"`
	BaselineInterest  float64 `json:"baseline_interest"`
	InterestSaved     float64 `json:"interest_saved"`
	MonthsSaved       int     `json:"months_saved"`
	PMIDropDate       string  `json:"pmi_drop_date"`
	HousingWithPMI    float64 `json:"housing_with_pmi"`
	HousingWithoutPMI float64 `json:"housing_without_pmi"`
}

// ExportScenario builds the persisted document from the inputs and a finished
// analysis.
func ExportScenario(name string, in amortize.MortgageInputs, analysis amortize.MortgageAnalysis, savedAt time.Time) ScenarioDocument {
	if name == "" {
		name = DefaultScenarioName
	}
	return ScenarioDocument{
		ScenarioName: name,
		SavedAt:      savedAt.Format(constants.DateLayout),
		Inputs: ScenarioInputs{
			StartDate:     in.StartDate.Format(constants.DateLayout),
			Principal:     in.Principal,
			HomeValue:     in.HomeValue,
			APRPercent:    in.APRPercent,
			Mode:          in.Mode,
			TermYears:     in.TermYears,
			PaymentManual: in.PaymentManual,
			ExtraMonthly:  in.ExtraMonthly,
			ExtraOneTime:  in.ExtraOneTime,
			Taxes:         in.Taxes,
			Insurance:     in.Insurance,
			PMI:           in.PMI,
			HOA:           in.HOA,
		},
		Summary: ScenarioSummary{
			PayoffDate:        formatDate(analysis.Summary.PayoffDate),
			Months:            analysis.Summary.Months,
			TotalInterest:     analysis.Summary.TotalInterest,
			TotalPaid:         analysis.Summary.TotalPaid,
			BaselineMonths:    analysis.Summary.BaselineMonths,
			BaselineInterest:  analysis.Summary.BaselineInterest,
			InterestSaved:     analysis.Summary.InterestSaved,
			MonthsSaved:       analysis.Summary.MonthsSaved,
			PMIDropDate:       formatDate(analysis.Summary.PMIDropDate),
			HousingWithPMI:    analysis.Summary.HousingWithPMI,
			HousingWithoutPMI: analysis.Summary.HousingWithoutPMI,
		},
	}
}

// ImportScenario decodes a saved scenario with the same cell-level tolerance
// as the snapshot import. The only failure is ErrMalformed; a recognizable
// document with bad cells imports with those cells zeroed.
func ImportScenario(raw []byte) (ScenarioDocument, error) {
	var shadow struct {
		ScenarioName *ledger.Text    `json:"scenario_name"`
		SavedAt      *ledger.Text    `json:"saved_at"`
		Inputs       json.RawMessage `json:"inputs"`
		Summary      json.RawMessage `json:"summary"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return ScenarioDocument{}, ErrMalformed
	}
	if !rawPresent(shadow.Inputs) {
		return ScenarioDocument{}, ErrMalformed
	}

	doc := ScenarioDocument{ScenarioName: DefaultScenarioName}
	if shadow.ScenarioName != nil && *shadow.ScenarioName != "" {
		doc.ScenarioName = string(*shadow.ScenarioName)
	}
	if shadow.SavedAt != nil {
		doc.SavedAt = string(*shadow.SavedAt)
	}

	var in struct {
		StartDate     ledger.Text   `json:"start_date"`
		Principal     ledger.Amount `json:"principal"`
		HomeValue     ledger.Amount `json:"home_value"`
		APRPercent    ledger.Amount `json:"apr_pct"`
		Mode          ledger.Text   `json:"mode"`
		TermYears     ledger.Amount `json:"term_years"`
		PaymentManual ledger.Amount `json:"payment_manual"`
		ExtraMonthly  ledger.Amount `json:"extra_monthly"`
		ExtraOneTime  ledger.Amount `json:"extra_one_time"`
		Taxes         ledger.Amount `json:"taxes"`
		Insurance     ledger.Amount `json:"insurance"`
		PMI           ledger.Amount `json:"pmi"`
		HOA           ledger.Amount `json:"hoa"`
	}
	if err := json.Unmarshal(shadow.Inputs, &in); err != nil {
		return ScenarioDocument{}, ErrMalformed
	}
	doc.Inputs = ScenarioInputs{
		StartDate:     string(in.StartDate),
		Principal:     float64(in.Principal),
		HomeValue:     float64(in.HomeValue),
		APRPercent:    float64(in.APRPercent),
		Mode:          string(in.Mode),
		TermYears:     int(in.TermYears),
		PaymentManual: float64(in.PaymentManual),
		ExtraMonthly:  float64(in.ExtraMonthly),
		ExtraOneTime:  float64(in.ExtraOneTime),
		Taxes:         float64(in.Taxes),
		Insurance:     float64(in.Insurance),
		PMI:           float64(in.PMI),
		HOA:           float64(in.HOA),
	}

	if rawPresent(shadow.Summary) {
		var sum ScenarioSummary
		if err := json.Unmarshal(shadow.Summary, &sum); err == nil {
			doc.Summary = sum
		}
	}

	return doc, nil
}

// MortgageInputs converts the wire inputs back to simulation inputs. An
// unparseable or absent start date falls back to the given default.
func (d ScenarioDocument) MortgageInputs(fallbackStart time.Time) amortize.MortgageInputs {
	start := fallbackStart
	if parsed, err := time.Parse(constants.DateLayout, d.Inputs.StartDate); err == nil {
		start = parsed
	}
	return amortize.MortgageInputs{
		StartDate:     start,
		Principal:     d.Inputs.Principal,
		HomeValue:     d.Inputs.HomeValue,
		APRPercent:    d.Inputs.APRPercent,
		Mode:          d.Inputs.Mode,
		TermYears:     d.Inputs.TermYears,
		PaymentManual: d.Inputs.PaymentManual,
		ExtraMonthly:  d.Inputs.ExtraMonthly,
		ExtraOneTime:  d.Inputs.ExtraOneTime,
		Taxes:         d.Inputs.Taxes,
		Insurance:     d.Inputs.Insurance,
		PMI:           d.Inputs.PMI,
		HOA:           d.Inputs.HOA,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constants.DateLayout)
}
