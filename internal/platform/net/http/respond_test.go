package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "gatehouse/internal/platform/errors"
	pnet "gatehouse/internal/platform/net"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func TestRespondOK(t *testing.T) {
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	r = r.WithContext(pnet.WithRequestID(r.Context(), "req-1"))

	RespondOK(rr, r, map[string]bool{"ok": true})

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
	env := decodeEnvelope(t, rr)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	RespondError(rr, r, perr.Forbiddenf("no entry"))

	if rr.Code != stdhttp.StatusForbidden {
		t.Fatalf("code = %d", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Code != perr.ErrorCodeForbidden || env.Error != "no entry" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_ErrorBodyDerivesStatus(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.NotFoundf("gone"))
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("code = %d", rr.Code)
	}
	if env := decodeEnvelope(t, rr); env.Error != "gone" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_NoContent(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response { return NoContent() })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodDelete, "/", nil))

	if rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("code = %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("204 must not carry a body: %q", rr.Body.String())
	}
}

func TestHandle_ZeroStatusDefaultsToOK(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response { return Response{Body: "x"} })
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestHandle_CustomHeaders(t *testing.T) {
	h := Handle(func(r *stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusOK, Body: "x", Header: stdhttp.Header{"X-Custom": []string{"yes"}}}
	})
	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if rr.Header().Get("X-Custom") != "yes" {
		t.Fatalf("custom header lost")
	}
}
