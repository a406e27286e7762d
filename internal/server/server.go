// Package server exposes the calculation engine over a JSON API. Handlers are
// thin: decode tolerantly, call the pure calculation packages, encode. All
// dashboard state lives in the request or in the document store; the server
// itself is stateless.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kmortenson/finance-dashboard/internal/amortize"
	"github.com/kmortenson/finance-dashboard/internal/debts"
	"github.com/kmortenson/finance-dashboard/internal/ledger"
	"github.com/kmortenson/finance-dashboard/internal/metrics"
	"github.com/kmortenson/finance-dashboard/internal/snapshot"
	"github.com/kmortenson/finance-dashboard/internal/store"
	"github.com/kmortenson/finance-dashboard/pkg/constants"
	"github.com/kmortenson/finance-dashboard/pkg/datetime"
	"github.com/kmortenson/finance-dashboard/pkg/format"
)

// DocumentStore is the persistence collaborator the user-scoped endpoints
// need. *store.Store satisfies it.
type DocumentStore interface {
	Load(ctx context.Context, domain, userID string) (json.RawMessage, error)
	Upsert(ctx context.Context, domain, userID string, doc json.RawMessage) error
}

type handler struct {
	logger  *zap.Logger
	store   DocumentStore
	version string
}

// NewHandler constructs the HTTP handler that serves the dashboard API. The
// store may be nil, which disables the user-scoped endpoints with 503s.
func NewHandler(logger *zap.Logger, documents DocumentStore, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, store: documents, version: trimmedVersion}

	r := mux.NewRouter()
	r.HandleFunc("/api/metrics", h.handleMetrics).Methods(http.MethodPost)
	r.HandleFunc("/api/mortgage", h.handleMortgage).Methods(http.MethodPost)
	r.HandleFunc("/api/debts/payoff", h.handleDebtsPayoff).Methods(http.MethodPost)
	r.HandleFunc("/api/snapshot/export", h.handleSnapshotExport).Methods(http.MethodPost)
	r.HandleFunc("/api/snapshot/import", h.handleSnapshotImport).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{userID}/snapshot", h.handleUserSnapshot).Methods(http.MethodGet, http.MethodPut)
	r.HandleFunc("/api/users/{userID}/mortgage", h.handleUserMortgage).Methods(http.MethodGet, http.MethodPut)
	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)

	return r
}

// decodeState reads a snapshot-shaped request body and merges it over the
// default tables and settings. An empty body yields the defaults.
func decodeState(body io.Reader) (ledger.Tables, metrics.Settings, error) {
	tables := ledger.DefaultTables()
	settings := metrics.DefaultSettings(time.Now())

	raw, err := io.ReadAll(body)
	if err != nil {
		return tables, settings, err
	}
	if len(raw) == 0 {
		return tables, settings, nil
	}
	return snapshot.Import(raw, tables, settings)
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	tables, settings, err := decodeState(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMetrics")
		return
	}

	bundle := metrics.Compute(tables, settings)
	h.writeJSON(w, http.StatusOK, bundle)
}

type mortgageResponse struct {
	Payment        float64                  `json:"payment"`
	PaymentDisplay string                   `json:"paymentDisplay"`
	Summary        snapshot.ScenarioSummary `json:"summary"`
	Schedule       []amortize.PaymentRecord `json:"schedule"`
}

func (h *handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMortgage")
		return
	}

	doc, err := snapshot.ImportScenario(raw)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleMortgage")
		return
	}

	inputs := doc.MortgageInputs(datetime.FirstOfMonth(time.Now()))
	analysis, err := amortize.AnalyzeMortgage(inputs)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, amortize.ErrInvalidPayment) || errors.Is(err, amortize.ErrNonAmortizing) {
			status = http.StatusUnprocessableEntity
		}
		h.respondError(w, status, err.Error(), "server.handleMortgage")
		return
	}

	rendered := snapshot.ExportScenario(doc.ScenarioName, inputs, analysis, time.Now())
	h.writeJSON(w, http.StatusOK, mortgageResponse{
		Payment:        analysis.Payment,
		PaymentDisplay: format.Money(analysis.Payment),
		Summary:        rendered.Summary,
		Schedule:       analysis.Result.Schedule,
	})
}

type debtsPayoffRequest struct {
	Debts     []ledger.DebtRow `json:"debts"`
	Strategy  debts.Strategy   `json:"strategy"`
	StartDate string           `json:"start_date"`
	NetIncome float64          `json:"net_income"`
}

type debtsPayoffResponse struct {
	Strategy      debts.Strategy        `json:"strategy"`
	RankedDebts   []ledger.DebtRow      `json:"rankedDebts"`
	Payoff        debts.AggregatePayoff `json:"payoff"`
	DebtBurdenPct *float64              `json:"debtBurdenPct"`
	BurdenDisplay string                `json:"burdenDisplay"`
	BurdenBand    string                `json:"burdenBand,omitempty"`
}

func (h *handler) handleDebtsPayoff(w http.ResponseWriter, r *http.Request) {
	var req debtsPayoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode debts payload: %v", err), "server.handleDebtsPayoff")
		return
	}

	if req.Strategy == "" {
		req.Strategy = debts.Avalanche
	}

	startDate := datetime.FirstOfMonth(time.Now())
	if req.StartDate != "" {
		parsed, err := time.Parse(constants.DateLayout, req.StartDate)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid start_date: %v", err), "server.handleDebtsPayoff")
			return
		}
		startDate = parsed
	}

	resp := debtsPayoffResponse{
		Strategy:    req.Strategy,
		RankedDebts: debts.Rank(req.Debts, req.Strategy),
		Payoff:      debts.EstimateAggregatePayoff(req.Debts, startDate),
	}

	payments := ledger.Sum(req.Debts)
	resp.DebtBurdenPct = debts.Burden(payments, req.NetIncome)
	resp.BurdenDisplay = format.Percent(resp.DebtBurdenPct)
	if resp.DebtBurdenPct != nil {
		resp.BurdenBand = debts.BurdenBand(*resp.DebtBurdenPct)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleSnapshotExport(w http.ResponseWriter, r *http.Request) {
	tables, settings, err := decodeState(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleSnapshotExport")
		return
	}

	bundle := metrics.Compute(tables, settings)
	doc := snapshot.Export(tables, settings, bundle, time.Now())
	h.writeJSON(w, http.StatusOK, doc)
}

type snapshotImportResponse struct {
	Tables   snapshot.TablesDoc   `json:"tables"`
	Settings snapshot.SettingsDoc `json:"settings"`
	Metrics  metrics.Bundle       `json:"metrics"`
}

func (h *handler) handleSnapshotImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleSnapshotImport")
		return
	}

	tables, settings, err := snapshot.Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleSnapshotImport")
		return
	}

	bundle := metrics.Compute(tables, settings)
	h.writeJSON(w, http.StatusOK, snapshotImportResponse{
		Tables: snapshot.TablesDoc{
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
		Settings: snapshot.SettingsDoc{
			IncomeIs:   settings.IncomeIs,
			TaxRatePct: settings.TaxRatePct,
			GrossMode:  settings.GrossMode,
		},
		Metrics: bundle,
	})
}

func (h *handler) handleUserSnapshot(w http.ResponseWriter, r *http.Request) {
	h.handleUserDocument(w, r, store.DomainFinance, func(raw []byte) error {
		_, _, err := snapshot.Import(raw, ledger.DefaultTables(), metrics.DefaultSettings(time.Now()))
		return err
	})
}

func (h *handler) handleUserMortgage(w http.ResponseWriter, r *http.Request) {
	h.handleUserDocument(w, r, store.DomainMortgage, func(raw []byte) error {
		_, err := snapshot.ImportScenario(raw)
		return err
	})
}

// handleUserDocument serves GET and PUT of one user's stored document for a
// domain. PUT validates the payload before storing it as-is; a store failure
// leaves the previous document in place.
func (h *handler) handleUserDocument(w http.ResponseWriter, r *http.Request, domain string, validate func([]byte) error) {
	op := "server.handleUserDocument"
	if h.store == nil {
		h.respondError(w, http.StatusServiceUnavailable, "document store not configured", op)
		return
	}

	userID := mux.Vars(r)["userID"]
	if userID == "" {
		h.respondError(w, http.StatusBadRequest, "missing user id", op)
		return
	}

	switch r.Method {
	case http.MethodGet:
		doc, err := h.store.Load(r.Context(), domain, userID)
		if err != nil {
			h.respondError(w, http.StatusBadGateway, fmt.Sprintf("failed to load document: %v", err), op)
			return
		}
		if doc == nil {
			h.respondError(w, http.StatusNotFound, "no document stored", op)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc); err != nil {
			h.logger.Error("failed to write document response", zap.Error(err))
		}

	case http.MethodPut:
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		if err := validate(raw); err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		if err := h.store.Upsert(r.Context(), domain, userID, raw); err != nil {
			h.respondError(w, http.StatusBadGateway, fmt.Sprintf("failed to store document: %v", err), op)
			return
		}

		h.logger.Info("document stored",
			zap.String("op", op),
			zap.String("domain", domain),
			zap.String("userID", userID),
		)
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
