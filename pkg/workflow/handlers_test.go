// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflow

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	"github.com/punchpoint/timeclock-service/pkg/clock"
)

const testTenantID = "8a6c31e8-29be-4b57-ae10-b9a28b8a8f0f"

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

func postJSON(t *testing.T, mux *chi.Mux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestHandleJoin(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().ResolveJoinToken(gomock.Any(), "join-abc").
		Return(&types.Tenant{ID: testTenantID, Name: "Acme"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/join/join-abc", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data JoinInfo `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.TenantID != testTenantID || resp.Data.TenantName != "Acme" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestHandleJoin_UnknownToken(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().ResolveJoinToken(gomock.Any(), "stale").Return(nil, storage.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/join/stale", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestHandleScan(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().Scan(gomock.Any(), &ScanRequest{
		TenantID:    testTenantID,
		Name:        "Ada",
		DeviceToken: "device-abc",
	}).Return(&StepResponse{Step: StepConfirmAction, Token: "jwt", Action: clock.ActionClockIn}, nil)

	rr := postJSON(t, mux, "/api/v0/clock/scan", ScanRequestBody{
		TenantID:    testTenantID,
		Name:        "Ada",
		DeviceToken: "device-abc",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data StepResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.Step != StepConfirmAction || resp.Data.Token != "jwt" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestHandleConfirmIdentity_CarriesCoordinates(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().ConfirmIdentity(gomock.Any(), &ConfirmIdentityRequest{
		TenantID:  testTenantID,
		WorkerID:  testTenantID,
		Latitude:  "41.8781",
		Longitude: "-87.6298",
	}).Return(&StepResponse{Step: StepConfirmAction, Token: "jwt"}, nil)

	rr := postJSON(t, mux, "/api/v0/clock/identity", ConfirmIdentityBody{
		TenantID:  testTenantID,
		WorkerID:  testTenantID,
		Latitude:  "41.8781",
		Longitude: "-87.6298",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleConfirmRegistration_CarriesCoordinates(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().ConfirmRegistration(gomock.Any(), &ConfirmRegistrationRequest{
		TenantID:    testTenantID,
		Name:        "Ada",
		DeviceToken: "device-abc",
		Latitude:    "41.8781",
		Longitude:   "-87.6298",
	}).Return(&StepResponse{Step: StepConfirmAction, Token: "jwt"}, nil)

	rr := postJSON(t, mux, "/api/v0/clock/register", ConfirmRegistrationBody{
		TenantID:    testTenantID,
		Name:        "Ada",
		DeviceToken: "device-abc",
		Latitude:    "41.8781",
		Longitude:   "-87.6298",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleScan_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body ScanRequestBody
	}{
		{name: "missing name", body: ScanRequestBody{TenantID: testTenantID}},
		{name: "tenant id not a uuid", body: ScanRequestBody{TenantID: "nope", Name: "Ada"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, _ := newHandlerFixture(t)

			rr := postJSON(t, mux, "/api/v0/clock/scan", tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestHandleExecute_ErrorMapping(t *testing.T) {
	testCases := []struct {
		err          error
		expectedCode int
	}{
		{err: ErrTokenInvalid, expectedCode: http.StatusUnauthorized},
		{err: ErrTokenUsed, expectedCode: http.StatusConflict},
		{err: fmt.Errorf("ledger exploded"), expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			mux, mockService := newHandlerFixture(t)

			mockService.EXPECT().Execute(gomock.Any(), "some-token").Return(nil, tc.err)

			rr := postJSON(t, mux, "/api/v0/clock/execute", ExecuteBody{Token: "some-token"})
			if rr.Code != tc.expectedCode {
				t.Errorf("expected %d, got %d", tc.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleExecute(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().Execute(gomock.Any(), "some-token").Return(&ExecuteResult{
		Status:     clock.StatusClockedIn,
		WorkerName: "Ada",
		DateLabel:  "Jun. 3rd, 2025",
		TimeLabel:  "09:01:02 AM",
	}, nil)

	rr := postJSON(t, mux, "/api/v0/clock/execute", ExecuteBody{Token: "some-token"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data ExecuteResult `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Data.Status != clock.StatusClockedIn || resp.Data.TimeLabel != "09:01:02 AM" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestHandleQuickClockOut_NotClockedIn(t *testing.T) {
	mux, mockService := newHandlerFixture(t)

	mockService.EXPECT().QuickClockOut(gomock.Any(), testTenantID, "device-abc").Return(nil, ErrNotClockedIn)

	rr := postJSON(t, mux, "/api/v0/clock/quick-out", QuickClockOutBody{TenantID: testTenantID, DeviceToken: "device-abc"})
	if rr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rr.Code)
	}
}

func TestHandleScan_MalformedBody(t *testing.T) {
	mux, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/clock/scan", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}
