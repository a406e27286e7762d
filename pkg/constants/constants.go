// Package constants provides shared constants for the finance-dashboard application.
package constants

// MonthLayout is the year-month format used for schedule labels.
const MonthLayout = "2006-01"

// DateLayout is the full-date format used in persisted documents.
const DateLayout = "2006-01-02"

// MonthLabelLayout is the human-readable month label format (e.g. "August 2026").
const MonthLabelLayout = "January 2006"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// WeeksPerMonth is the calendar-averaged number of weeks in a month,
	// used for the weekly safe-to-spend figure.
	WeeksPerMonth = 4.33

	// DaysPerMonth is the calendar-averaged number of days in a month,
	// used for the daily safe-to-spend figure.
	DaysPerMonth = 30.4
)

// Simulation bounds
const (
	// DefaultSimulationMonths caps a generic amortization run.
	DefaultSimulationMonths = 1200

	// MortgageSimulationMonths caps a mortgage amortization run.
	MortgageSimulationMonths = 2000

	// DebtPayoffCapMonths caps a per-debt payoff estimate; debts that do not
	// reach zero inside the cap are reported as unbounded rather than failed.
	DebtPayoffCapMonths = 600

	// PMICutoffRatio is the loan-to-value ratio at which PMI can drop off.
	PMICutoffRatio = 0.80
)

// Debt burden bands (percent of net income going to minimum debt payments).
const (
	DebtBurdenLightMax      = 10.0
	DebtBurdenManageableMax = 20.0
	DebtBurdenHeavyMax      = 30.0
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultStorePath is the default location of the document store database
	DefaultStorePath = "finance-dashboard.db"
)
