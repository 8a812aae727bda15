/*
handlers.go - HTTP API handlers for the vacation tracking system

PURPOSE:
  Exposes the vacation tracker via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Auth:
    POST   /api/auth/register       Create an account (rate limited)
    POST   /api/auth/login          Exchange credentials for a token
    POST   /api/auth/init-demo      Seed/refresh the demo account

  Professionals:
    GET    /api/professionals       List the caller's professionals
    POST   /api/professionals       Register a professional
    GET    /api/professionals/{id}  Get one professional
    PUT    /api/professionals/{id}  Update name/manager/revenue
    DELETE /api/professionals/{id}  Delete (cascades to vacations)

  Vacations:
    GET    /api/vacations           List the caller's vacation periods
    POST   /api/vacations           Record a vacation period
    PUT    /api/vacations/{id}      Rewrite the four window dates
    DELETE /api/vacations/{id}      Delete a vacation period

  Dashboard:
    GET    /api/dashboard           Aggregated impact (optional from/to)

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: persistence port (flat-file or Postgres, chosen at startup)
  - Auth service + token manager
  - Demo account settings

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (PlanVacation, Aggregate, store ops)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 401: Missing or invalid token
  - 403: Demo account attempting a write
  - 404: Record not found (or owned by someone else)
  - 409: Email already registered
  - 429: Rate limited
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - middleware.go: Auth, rate limiting, demo guard
  - server.go: Router setup
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/unchain0/sistema-ferias/auth"
	"github.com/unchain0/sistema-ferias/config"
	"github.com/unchain0/sistema-ferias/vacation"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	store  vacation.Store
	auth   *auth.Service
	tokens *auth.TokenManager
	demo   config.Demo
	logger *slog.Logger
}

func NewHandler(store vacation.Store, authSvc *auth.Service, tokens *auth.TokenManager, demo config.Demo, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		auth:   authSvc,
		tokens: tokens,
		demo:   demo,
		logger: logger,
	}
}

// =============================================================================
// AUTH
// =============================================================================

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "All fields are required", nil)
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters", nil)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, vacation.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email already registered", nil)
			return
		}
		h.logger.Error("register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user", err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}
	writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: toUserDTO(user)})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to authenticate", err)
		return
	}
	if user == nil {
		// Unknown email and wrong password answer identically.
		writeError(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}
	writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: toUserDTO(user)})
}

// =============================================================================
// PROFESSIONALS
// =============================================================================

func (h *Handler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	pros, err := h.store.ListProfessionals(r.Context(), userID(r.Context()))
	if err != nil {
		h.logger.Error("list professionals failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list professionals", err)
		return
	}

	dtos := make([]ProfessionalDTO, 0, len(pros))
	for i := range pros {
		dtos = append(dtos, toProfessionalDTO(&pros[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.ClientManager == "" || req.MonthlyRevenue == 0 {
		writeError(w, http.StatusBadRequest, "All fields are required", nil)
		return
	}
	revenue := decimal.NewFromFloat(req.MonthlyRevenue)
	if !revenue.IsPositive() {
		writeError(w, http.StatusBadRequest, "Monthly revenue must be positive", nil)
		return
	}

	pro, err := h.store.CreateProfessional(r.Context(), vacation.NewProfessional{
		UserID:         userID(r.Context()),
		Name:           req.Name,
		ClientManager:  req.ClientManager,
		MonthlyRevenue: revenue,
	})
	if err != nil {
		h.logger.Error("create professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create professional", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfessionalDTO(pro))
}

func (h *Handler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pro, err := h.store.GetProfessional(r.Context(), id, userID(r.Context()))
	if err != nil {
		h.logger.Error("get professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get professional", err)
		return
	}
	if pro == nil {
		writeError(w, http.StatusNotFound, "Professional not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toProfessionalDTO(pro))
}

func (h *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	patch := vacation.ProfessionalPatch{
		Name:          req.Name,
		ClientManager: req.ClientManager,
	}
	if req.MonthlyRevenue != nil {
		revenue := decimal.NewFromFloat(*req.MonthlyRevenue)
		if !revenue.IsPositive() {
			writeError(w, http.StatusBadRequest, "Monthly revenue must be positive", nil)
			return
		}
		patch.MonthlyRevenue = &revenue
	}

	pro, err := h.store.UpdateProfessional(r.Context(), id, userID(r.Context()), patch)
	if err != nil {
		h.logger.Error("update professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update professional", err)
		return
	}
	if pro == nil {
		writeError(w, http.StatusNotFound, "Professional not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toProfessionalDTO(pro))
}

func (h *Handler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteProfessional(r.Context(), id, userID(r.Context()))
	if err != nil {
		h.logger.Error("delete professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete professional", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Professional not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Professional deleted"})
}

// =============================================================================
// VACATION PERIODS
// =============================================================================

func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	vacs, err := h.store.ListVacationPeriods(r.Context(), userID(r.Context()))
	if err != nil {
		h.logger.Error("list vacations failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list vacation periods", err)
		return
	}

	dtos := make([]VacationPeriodDTO, 0, len(vacs))
	for i := range vacs {
		dtos = append(dtos, toVacationDTO(&vacs[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var req CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ProfessionalID == "" {
		writeError(w, http.StatusBadRequest, "All fields are required", nil)
		return
	}

	acquisition, usage, err := parseWindows(req.AcquisitionStartDate, req.AcquisitionEndDate, req.UsageStartDate, req.UsageEndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	uid := userID(r.Context())
	pro, err := h.store.GetProfessional(r.Context(), req.ProfessionalID, uid)
	if err != nil {
		h.logger.Error("get professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get professional", err)
		return
	}
	if pro == nil {
		writeError(w, http.StatusNotFound, "Professional not found", nil)
		return
	}

	plan, err := vacation.PlanVacation(pro, usage, acquisition)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid vacation period", err)
		return
	}

	created, err := h.store.CreateVacationPeriod(r.Context(), vacation.NewVacationPeriod{
		UserID:         uid,
		ProfessionalID: pro.ID,
		Acquisition:    acquisition,
		Usage:          usage,
		Plan:           plan,
	})
	if err != nil {
		h.logger.Error("create vacation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create vacation period", err)
		return
	}
	writeJSON(w, http.StatusCreated, toVacationDTO(created))
}

func (h *Handler) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	acquisition, usage, err := parseWindows(req.AcquisitionStartDate, req.AcquisitionEndDate, req.UsageStartDate, req.UsageEndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	uid := userID(r.Context())
	pro, err := h.store.GetProfessional(r.Context(), req.ProfessionalID, uid)
	if err != nil {
		h.logger.Error("get professional failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get professional", err)
		return
	}
	if pro == nil {
		writeError(w, http.StatusNotFound, "Professional not found", nil)
		return
	}

	// Derived fields are always recomputed from the new windows and the
	// professional's current revenue.
	plan, err := vacation.PlanVacation(pro, usage, acquisition)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid vacation period", err)
		return
	}

	updated, err := h.store.UpdateVacationPeriod(r.Context(), id, uid, vacation.VacationPeriodPatch{
		AcquisitionStart: &acquisition.Start,
		AcquisitionEnd:   &acquisition.End,
		UsageStart:       &usage.Start,
		UsageEnd:         &usage.End,
		Plan:             &plan,
	})
	if err != nil {
		h.logger.Error("update vacation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update vacation period", err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Vacation period not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toVacationDTO(updated))
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteVacationPeriod(r.Context(), id, userID(r.Context()))
	if err != nil {
		h.logger.Error("delete vacation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete vacation period", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Vacation period not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Vacation period deleted"})
}

// =============================================================================
// DASHBOARD
// =============================================================================

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	uid := userID(r.Context())
	ctx := r.Context()

	rng, err := parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range (use YYYY-MM-DD)", err)
		return
	}

	pros, err := h.store.ListProfessionals(ctx, uid)
	if err != nil {
		h.logger.Error("list professionals failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}
	vacs, err := h.store.ListVacationPeriods(ctx, uid)
	if err != nil {
		h.logger.Error("list vacations failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardDTO(vacation.Aggregate(pros, vacs, rng)))
}

// =============================================================================
// HELPERS
// =============================================================================

func parseWindows(acqStart, acqEnd, useStart, useEnd string) (acquisition, usage vacation.Period, err error) {
	fields := []struct {
		name  string
		value string
		dst   *vacation.Date
	}{
		{"acquisitionStartDate", acqStart, &acquisition.Start},
		{"acquisitionEndDate", acqEnd, &acquisition.End},
		{"usageStartDate", useStart, &usage.Start},
		{"usageEndDate", useEnd, &usage.End},
	}
	for _, f := range fields {
		if f.value == "" {
			return acquisition, usage, fmt.Errorf("%s is required", f.name)
		}
		d, parseErr := vacation.ParseDate(f.value)
		if parseErr != nil {
			return acquisition, usage, fmt.Errorf("%s: %w", f.name, parseErr)
		}
		*f.dst = d
	}
	return acquisition, usage, nil
}

// parseDateRange turns optional from/to query params into a filter.
// Both empty means no filter.
func parseDateRange(from, to string) (*vacation.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("from and to must be provided together")
	}
	fromDate, err := vacation.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	toDate, err := vacation.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("to precedes from")
	}
	return &vacation.DateRange{From: fromDate, To: toDate}, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
