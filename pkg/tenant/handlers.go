// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/punchpoint/timeclock-service/internal/http/types"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

type CreateTenantBody struct {
	Name string `json:"name" validate:"required"`
	Plan string `json:"plan" validate:"omitempty,oneof=Free Pro"`
}

type UpdateTenantBody struct {
	Name string `json:"name" validate:"required"`
	Plan string `json:"plan" validate:"required,oneof=Free Pro"`
}

type UpdateSettingsBody struct {
	Settings map[string]string `json:"settings" validate:"required"`
}

type SetRoleBody struct {
	Role string `json:"role" validate:"required,oneof=Member Manager"`
}

type CreateAccountBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SetFloatingBody struct {
	Floating bool `json:"floating"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/api/v0/tenants", func(r chi.Router) {
		r.Post("/", a.handleCreateTenant)
		r.Get("/", a.handleListTenants)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.handleGetTenant)
			r.Put("/", a.handleUpdateTenant)
			r.Delete("/", a.handleDeleteTenant)
			r.Post("/join-token", a.handleRotateJoinToken)

			r.Get("/settings", a.handleGetSettings)
			r.Patch("/settings", a.handleUpdateSettings)

			r.Get("/workers", a.handleListWorkers)
			r.Patch("/workers/{workerID}/role", a.handleSetRole)
			r.Post("/workers/{workerID}/account", a.handleCreateAccount)
			r.Delete("/workers/{workerID}/device", a.handleClearDevice)
			r.Patch("/workers/{workerID}/floating", a.handleSetFloating)
			r.Delete("/workers/{workerID}", a.handleDeleteWorker)

			r.Get("/entries", a.handleListEntries)
			r.Get("/entries/open", a.handleListCurrentlyIn)
			r.Post("/entries/{entryID}/close", a.handleForceClockOut)
			r.Delete("/entries/{entryID}", a.handleDeleteEntry)

			r.Get("/audit", a.handleListAudit)
		})
	})
}

func (a *API) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	body := new(CreateTenantBody)
	if !a.decode(w, r, body) {
		return
	}

	tenant, err := a.service.CreateTenant(r.Context(), body.Name, types.Plan(body.Plan))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, tenant)
}

func (a *API) handleListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.service.ListTenants(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenants)
}

func (a *API) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	tenant, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenant)
}

func (a *API) handleUpdateTenant(w http.ResponseWriter, r *http.Request) {
	body := new(UpdateTenantBody)
	if !a.decode(w, r, body) {
		return
	}

	tenant, err := a.service.UpdateTenant(r.Context(), chi.URLParam(r, "id"), body.Name, types.Plan(body.Plan))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, tenant)
}

func (a *API) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteTenant(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleRotateJoinToken(w http.ResponseWriter, r *http.Request) {
	token, err := a.service.RotateJoinToken(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, map[string]string{"join_token": token})
}

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.service.GetSettings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, settings)
}

func (a *API) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	body := new(UpdateSettingsBody)
	if !a.decode(w, r, body) {
		return
	}

	if err := a.service.UpdateSettings(r.Context(), chi.URLParam(r, "id"), body.Settings); err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := a.service.ListWorkers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, workers)
}

func (a *API) handleSetRole(w http.ResponseWriter, r *http.Request) {
	body := new(SetRoleBody)
	if !a.decode(w, r, body) {
		return
	}

	err := a.service.SetWorkerRole(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "workerID"), types.Role(body.Role))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	body := new(CreateAccountBody)
	if !a.decode(w, r, body) {
		return
	}

	err := a.service.CreateWorkerAccount(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "workerID"), body.Email, body.Password)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, nil)
}

func (a *API) handleClearDevice(w http.ResponseWriter, r *http.Request) {
	err := a.service.ClearDeviceToken(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "workerID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleSetFloating(w http.ResponseWriter, r *http.Request) {
	body := new(SetFloatingBody)
	if !a.decode(w, r, body) {
		return
	}

	err := a.service.SetFloating(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "workerID"), body.Floating)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleDeleteWorker(w http.ResponseWriter, r *http.Request) {
	err := a.service.DeleteWorker(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "workerID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := storage.LedgerFilter{
		WorkerID:  q.Get("worker_id"),
		DateLabel: q.Get("date"),
		SortBy:    q.Get("sort"),
		SortDesc:  q.Get("desc") == "true",
	}
	filter.Page, _ = strconv.ParseInt(q.Get("page"), 10, 64)
	filter.PageSize, _ = strconv.ParseInt(q.Get("page_size"), 10, 64)

	rows, err := a.service.ListEntries(r.Context(), chi.URLParam(r, "id"), filter)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, rows)
}

func (a *API) handleListCurrentlyIn(w http.ResponseWriter, r *http.Request) {
	rows, err := a.service.ListCurrentlyIn(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, rows)
}

func (a *API) handleForceClockOut(w http.ResponseWriter, r *http.Request) {
	err := a.service.ForceClockOut(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "entryID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	err := a.service.DeleteEntry(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "entryID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) handleListAudit(w http.ResponseWriter, r *http.Request) {
	events, err := a.service.ListAuditEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, events)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, body any) bool {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(body); err != nil {
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrManagerLimit):
		httpTypes.WriteErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrCredentialRequired), errors.Is(err, ErrLastManager), errors.Is(err, ErrEntryClosed),
		errors.Is(err, storage.ErrDuplicateKey):
		httpTypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	default:
		a.logger.Errorf("admin API error: %v", err)
		httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
