package errs_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/taskflow/taskflow/bridge/scaffolding/errs"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code errs.ErrCode
		want int
	}{
		{errs.InvalidArgument, http.StatusBadRequest},
		{errs.Unauthenticated, http.StatusUnauthorized},
		{errs.NotFound, http.StatusNotFound},
		{errs.AlreadyExists, http.StatusConflict},
		{errs.Internal, http.StatusInternalServerError},
		{errs.InternalOnlyLog, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		err := errs.Newf(tc.code, "boom")
		if got := err.HTTPStatus(); got != tc.want {
			t.Errorf("code %s: expected status %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestEncodeShape(t *testing.T) {
	err := errs.Newf(errs.AlreadyExists, "Email already exists")

	data, contentType, encErr := err.Encode()
	if encErr != nil {
		t.Fatalf("Encode failed: %v", encErr)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("Unexpected content type: %s", contentType)
	}

	var body map[string]string
	if jsonErr := json.Unmarshal(data, &body); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}
	if body["error"] != "Email already exists" {
		t.Errorf("Expected error field, got %v", body)
	}
	if len(body) != 1 {
		t.Errorf("Expected only the error field on the wire, got %v", body)
	}
}

func TestNewCapturesCaller(t *testing.T) {
	err := errs.Newf(errs.Internal, "boom")
	if err.FuncName == "" || err.FileName == "" {
		t.Errorf("Expected caller info, got func=%q file=%q", err.FuncName, err.FileName)
	}
}
