package http

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type echoRequest struct {
	Text  string `json:"text" validate:"required"`
	Limit int    `json:"limit" default:"25" validate:"gte=1,lte=100"`
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestReadAndValidateRequestAppliesDefaults(t *testing.T) {
	var req echoRequest
	if errs := ReadAndValidateRequest(newJSONContext(t, `{"text":"hello"}`), &req); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if req.Limit != 25 {
		t.Fatalf("default limit = %d, want 25", req.Limit)
	}
}

func TestReadAndValidateRequestReportsFieldErrors(t *testing.T) {
	var req echoRequest
	errs := ReadAndValidateRequest(newJSONContext(t, `{"limit":500}`), &req)
	if errs == nil {
		t.Fatal("expected validation errors, got none")
	}
	verrs, ok := errs.([]ValidationError)
	if !ok {
		t.Fatalf("expected []ValidationError, got %T", errs)
	}
	if len(verrs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(verrs), verrs)
	}
	codes := map[string]bool{}
	for _, ve := range verrs {
		codes[ve.Code] = true
	}
	if !codes["ERR_REQUIRED"] || !codes["ERR_LTE"] {
		t.Fatalf("missing expected codes in %v", verrs)
	}
}

func TestReadAndValidateRequestRejectsMalformedBody(t *testing.T) {
	var req echoRequest
	if errs := ReadAndValidateRequest(newJSONContext(t, `{not json`), &req); errs == nil {
		t.Fatal("expected error for malformed body")
	}
}
