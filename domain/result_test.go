package domain

import (
	"net/http"
	"testing"
)

func TestActionResult_Constructors(t *testing.T) {
	if res := Success("done", "payload"); !res.OK() || res.Status != http.StatusOK {
		t.Errorf("unexpected success result %+v", res)
	}

	res := ValidationFailure(map[string][]string{"email": {"Invalid email address"}})
	if res.Status != http.StatusUnprocessableEntity || res.Message != "Validation failed" {
		t.Errorf("unexpected validation result %+v", res)
	}
	if res.OK() {
		t.Error("validation failure must not be OK")
	}

	if res := NotFoundFailure("gone"); res.Status != http.StatusNotFound {
		t.Errorf("unexpected not-found result %+v", res)
	}

	net := NetworkFailure("connection refused")
	if net.Status != http.StatusInternalServerError {
		t.Errorf("network failure must coerce to 500, got %d", net.Status)
	}
	if net.Message != NetworkFailureMessage {
		t.Errorf("network failure message must be fixed, got %q", net.Message)
	}
}

func TestActionResult_Kind(t *testing.T) {
	tests := []struct {
		name     string
		result   ActionResult
		expected ResultKind
	}{
		{"success", Success("ok", nil), KindSuccess},
		{"validation", ValidationFailure(map[string][]string{"a": {"b"}}), KindValidation},
		{"unauthorized", AuthFailure(http.StatusUnauthorized, "no"), KindAuth},
		{"forbidden", AuthFailure(http.StatusForbidden, "no"), KindAuth},
		{"not found", NotFoundFailure("gone"), KindNotFound},
		{"remote", RemoteFailure(http.StatusConflict, "dup", nil), KindRemote},
		{"network", NetworkFailure("refused"), KindNetwork},
		// A backend 500 with its own message is remote, not network.
		{"backend 500", RemoteFailure(http.StatusInternalServerError, "oops", nil), KindRemote},
		// Backend field errors on a 422 classify as validation too.
		{"remote validation", RemoteFailure(http.StatusUnprocessableEntity, "Validation failed",
			map[string][]string{"email": {"taken"}}), KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Kind(); got != tt.expected {
				t.Errorf("expected kind %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEnumValidators(t *testing.T) {
	if !ValidRole("DONOR") || !ValidRole("HOSPITAL") {
		t.Error("signup roles must validate")
	}
	if ValidRole("ADMIN") || ValidRole("") {
		t.Error("only signup-selectable roles are valid")
	}

	for _, bt := range BloodTypes {
		if !ValidBloodType(string(bt)) {
			t.Errorf("blood type %s must validate", bt)
		}
	}
	if ValidBloodType("O_MINUS") {
		t.Error("unknown blood type must not validate")
	}

	if !ValidUrgency("HIGH") || ValidUrgency("EXTREME") {
		t.Error("urgency validation broken")
	}
	if !ValidRequestStatus("CANCELLED") || ValidRequestStatus("DONE") {
		t.Error("request status validation broken")
	}
	if !ValidHospitalType("BLOOD_BANK") || ValidHospitalType("CLINIC") {
		t.Error("hospital type validation broken")
	}
	if !ValidHospitalStatus("UNDER_MAINTENANCE") || ValidHospitalStatus("BUSY") {
		t.Error("hospital status validation broken")
	}
}
