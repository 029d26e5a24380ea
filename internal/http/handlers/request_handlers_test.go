package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Luffyt01/HemoLink-sub000/domain"
	"github.com/Luffyt01/HemoLink-sub000/internal/mocks"
)

func requestRouter(gateway *mocks.MockBackendGateway) *gin.Engine {
	h := NewRequestHandlers(newTestSessions(gateway))
	r := gin.New()
	hospital := r.Group("/hospital", stubSession("sess1", "u1", "HOSPITAL", "bk_tok"))
	hospital.POST("/requests", h.Create)
	hospital.POST("/requests/:id", h.Update)
	hospital.PATCH("/requests/:id/cancel", h.Cancel)
	hospital.PATCH("/requests/:id/status/:status", h.ChangeStatus)
	hospital.PATCH("/requests/:id/urgency/:urgency", h.ChangeUrgency)
	return r
}

func validRequestForm() url.Values {
	return url.Values{
		"bloodType":     {"O_NEGATIVE"},
		"unitsRequired": {"3"},
		"urgency":       {"HIGH"},
		"expiryTime":    {time.Now().Add(48 * time.Hour).Format(time.RFC3339)},
	}
}

func patch(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestHandlers_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		mutate        func(form url.Values)
		expectedField string
	}{
		{"unknown blood type", func(f url.Values) { f.Set("bloodType", "O_MINUS") }, "bloodType"},
		{"zero units", func(f url.Values) { f.Set("unitsRequired", "0") }, "unitsRequired"},
		{"non numeric units", func(f url.Values) { f.Set("unitsRequired", "many") }, "unitsRequired"},
		{"unknown urgency", func(f url.Values) { f.Set("urgency", "EXTREME") }, "urgency"},
		{"past expiry", func(f url.Values) {
			f.Set("expiryTime", time.Now().Add(-time.Hour).Format(time.RFC3339))
		}, "expiryTime"},
		{"garbled expiry", func(f url.Values) { f.Set("expiryTime", "tomorrow") }, "expiryTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mocks.MockBackendGateway{}
			r := requestRouter(gateway)

			form := validRequestForm()
			tt.mutate(form)
			w := postForm(r, "/hospital/requests", form)

			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d (%s)", w.Code, w.Body.String())
			}
			if len(gateway.Calls) != 0 {
				t.Errorf("invalid form must not reach the backend, got %v", gateway.Calls)
			}
			res := decodeResult(t, w)
			if len(res.Errors[tt.expectedField]) == 0 {
				t.Errorf("expected error under %q, got %+v", tt.expectedField, res.Errors)
			}
		})
	}
}

func TestRequestHandlers_CreateForwards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotToken string
	var gotInput domain.BloodRequestInput
	gateway := &mocks.MockBackendGateway{
		CreateBloodRequestFunc: func(ctx context.Context, token string, in domain.BloodRequestInput) domain.ActionResult {
			gotToken = token
			gotInput = in
			return domain.Success("Request created successfully", nil)
		},
	}
	r := requestRouter(gateway)

	w := postForm(r, "/hospital/requests", validRequestForm())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if gotToken != "bk_tok" {
		t.Errorf("expected backend token forwarded, got %q", gotToken)
	}
	if gotInput.BloodType != domain.ONegative || gotInput.UnitsRequired != 3 || gotInput.Urgency != domain.UrgencyHigh {
		t.Errorf("unexpected forwarded input %+v", gotInput)
	}
}

func TestRequestHandlers_StatusParamValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gateway := &mocks.MockBackendGateway{}
	r := requestRouter(gateway)

	w := patch(r, "/hospital/requests/r1/status/DONE")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown status, got %d", w.Code)
	}
	if len(gateway.Calls) != 0 {
		t.Errorf("expected no backend call, got %v", gateway.Calls)
	}

	w = patch(r, "/hospital/requests/r1/status/FULFILLED")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if len(gateway.Calls) != 1 || gateway.Calls[0] != "ChangeRequestStatus" {
		t.Errorf("expected single status call, got %v", gateway.Calls)
	}
}

func TestRequestHandlers_UrgencyParamValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gateway := &mocks.MockBackendGateway{}
	r := requestRouter(gateway)

	w := patch(r, "/hospital/requests/r1/urgency/PANIC")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown urgency, got %d", w.Code)
	}

	w = patch(r, "/hospital/requests/r1/urgency/LOW")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequestHandlers_CancelForwardsID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID string
	gateway := &mocks.MockBackendGateway{
		CancelBloodRequestFunc: func(ctx context.Context, token, requestID string) domain.ActionResult {
			gotID = requestID
			return domain.Success("Request cancelled successfully", nil)
		},
	}
	r := requestRouter(gateway)

	w := patch(r, "/hospital/requests/req_42/cancel")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotID != "req_42" {
		t.Errorf("expected request id forwarded, got %q", gotID)
	}
}
