// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/punchpoint/timeclock-service/internal/http/types"
	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/pkg/identity"
)

type ScanRequestBody struct {
	TenantID    string `json:"tenant_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	DeviceToken string `json:"device_token"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

type ConfirmIdentityBody struct {
	TenantID  string `json:"tenant_id" validate:"required,uuid"`
	WorkerID  string `json:"worker_id" validate:"required,uuid"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type ConfirmRegistrationBody struct {
	TenantID    string `json:"tenant_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required"`
	DeviceToken string `json:"device_token"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

type ExecuteBody struct {
	Token string `json:"token" validate:"required"`
}

type QuickClockOutBody struct {
	TenantID    string `json:"tenant_id" validate:"required,uuid"`
	DeviceToken string `json:"device_token" validate:"required"`
}

type JoinInfo struct {
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/join/{token}", a.handleJoin)
	mux.Post("/api/v0/clock/scan", a.handleScan)
	mux.Post("/api/v0/clock/identity", a.handleConfirmIdentity)
	mux.Post("/api/v0/clock/register", a.handleConfirmRegistration)
	mux.Post("/api/v0/clock/execute", a.handleExecute)
	mux.Post("/api/v0/clock/quick-out", a.handleQuickClockOut)
}

func (a *API) handleJoin(w http.ResponseWriter, r *http.Request) {
	tenant, err := a.service.ResolveJoinToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, JoinInfo{TenantID: tenant.ID, TenantName: tenant.Name})
}

func (a *API) handleScan(w http.ResponseWriter, r *http.Request) {
	body := new(ScanRequestBody)
	if !a.decode(w, r, body) {
		return
	}

	step, err := a.service.Scan(r.Context(), &ScanRequest{
		TenantID:    body.TenantID,
		Name:        body.Name,
		DeviceToken: body.DeviceToken,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, step)
}

func (a *API) handleConfirmIdentity(w http.ResponseWriter, r *http.Request) {
	body := new(ConfirmIdentityBody)
	if !a.decode(w, r, body) {
		return
	}

	step, err := a.service.ConfirmIdentity(r.Context(), &ConfirmIdentityRequest{
		TenantID:  body.TenantID,
		WorkerID:  body.WorkerID,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, step)
}

func (a *API) handleConfirmRegistration(w http.ResponseWriter, r *http.Request) {
	body := new(ConfirmRegistrationBody)
	if !a.decode(w, r, body) {
		return
	}

	step, err := a.service.ConfirmRegistration(r.Context(), &ConfirmRegistrationRequest{
		TenantID:    body.TenantID,
		Name:        body.Name,
		DeviceToken: body.DeviceToken,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, step)
}

func (a *API) handleExecute(w http.ResponseWriter, r *http.Request) {
	body := new(ExecuteBody)
	if !a.decode(w, r, body) {
		return
	}

	result, err := a.service.Execute(r.Context(), body.Token)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, result)
}

func (a *API) handleQuickClockOut(w http.ResponseWriter, r *http.Request) {
	body := new(QuickClockOutBody)
	if !a.decode(w, r, body) {
		return
	}

	result, err := a.service.QuickClockOut(r.Context(), body.TenantID, body.DeviceToken)
	if err != nil {
		a.writeError(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, result)
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
	case errors.Is(err, identity.ErrEmptyName):
		httpTypes.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, identity.ErrSeatLimitExceeded):
		httpTypes.WriteErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, identity.ErrDeviceClaimed), errors.Is(err, ErrTokenUsed), errors.Is(err, ErrNotClockedIn):
		httpTypes.WriteErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrTokenInvalid):
		httpTypes.WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		httpTypes.WriteErrorResponse(w, http.StatusNotFound, "not found")
	default:
		a.logger.Errorf("clock workflow error: %v", err)
		httpTypes.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
