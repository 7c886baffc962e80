// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/punchpoint/timeclock-service/internal/logging"
	"github.com/punchpoint/timeclock-service/internal/monitoring"
	"github.com/punchpoint/timeclock-service/internal/storage"
	"github.com/punchpoint/timeclock-service/internal/tracing"
	"github.com/punchpoint/timeclock-service/internal/types"
)

func newHandlerFixture(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(
		mockService,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	).RegisterEndpoints(mux)

	return mux, mockService
}

func doJSON(t *testing.T, mux *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestHandleCreateTenant(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().CreateTenant(gomock.Any(), "Acme", types.PlanPro).
		Return(&types.Tenant{ID: tenantID, Name: "Acme", Plan: types.PlanPro}, nil)

	rr := doJSON(t, mux, http.MethodPost, "/api/v0/tenants", CreateTenantBody{Name: "Acme", Plan: "Pro"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data types.Tenant `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.Name != "Acme" || resp.Data.Plan != types.PlanPro {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestHandleCreateTenant_RejectsUnknownPlan(t *testing.T) {
	mux, _ := newHandlerFixture(t)

	rr := doJSON(t, mux, http.MethodPost, "/api/v0/tenants", CreateTenantBody{Name: "Acme", Plan: "Platinum"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestHandleSetRole_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "manager limit", err: ErrManagerLimit, expectedCode: http.StatusForbidden},
		{name: "credential required", err: ErrCredentialRequired, expectedCode: http.StatusConflict},
		{name: "last manager", err: ErrLastManager, expectedCode: http.StatusConflict},
		{name: "worker not found", err: storage.ErrNotFound, expectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockService := newHandlerFixture(t)

			mockService.EXPECT().SetWorkerRole(gomock.Any(), tenantID, "worker-1", types.RoleManager).Return(tc.err)

			rr := doJSON(t, mux, http.MethodPatch, "/api/v0/tenants/"+tenantID+"/workers/worker-1/role", SetRoleBody{Role: "Manager"})
			if rr.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d", tc.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleCreateAccount_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body CreateAccountBody
	}{
		{name: "bad email", body: CreateAccountBody{Email: "not-an-email", Password: "longenough"}},
		{name: "short password", body: CreateAccountBody{Email: "ada@example.com", Password: "short"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, _ := newHandlerFixture(t)

			rr := doJSON(t, mux, http.MethodPost, "/api/v0/tenants/"+tenantID+"/workers/worker-1/account", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestHandleListEntries_ParsesFilter(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	expected := storage.LedgerFilter{
		WorkerID:  "worker-1",
		DateLabel: "Jun. 3rd, 2025",
		SortBy:    "clock_in",
		SortDesc:  true,
		Page:      2,
		PageSize:  25,
	}
	mockService.EXPECT().ListEntries(gomock.Any(), tenantID, expected).Return([]*storage.LedgerRow{}, nil)

	path := "/api/v0/tenants/" + tenantID + "/entries?worker_id=worker-1&date=Jun.+3rd,+2025&sort=clock_in&desc=true&page=2&page_size=25"
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleForceClockOut_AlreadyClosed(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().ForceClockOut(gomock.Any(), tenantID, "entry-1").Return(ErrEntryClosed)

	rr := doJSON(t, mux, http.MethodPost, "/api/v0/tenants/"+tenantID+"/entries/entry-1/close", nil)
	if rr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rr.Code)
	}
}

func TestHandleRotateJoinToken(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().RotateJoinToken(gomock.Any(), tenantID).Return("fresh-token", nil)

	rr := doJSON(t, mux, http.MethodPost, "/api/v0/tenants/"+tenantID+"/join-token", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data["join_token"] != "fresh-token" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}
