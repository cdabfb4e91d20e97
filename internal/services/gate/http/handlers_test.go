package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "gatehouse/internal/platform/errors"
	phttp "gatehouse/internal/platform/net/http"
	adom "gatehouse/internal/services/audit/domain"
	"gatehouse/internal/services/gate/domain"
	gsvc "gatehouse/internal/services/gate/service"
)

type fakeService struct {
	gate    func(actor string, allow bool) (gsvc.GateOutcome, error)
	resolve func(actor string, repo domain.RepoRef) (domain.Resolution, error)
}

func (f *fakeService) GateActor(_ context.Context, actor string, allow bool) (gsvc.GateOutcome, error) {
	return f.gate(actor, allow)
}

func (f *fakeService) Resolve(_ context.Context, actor string, repo domain.RepoRef) (domain.Resolution, error) {
	return f.resolve(actor, repo)
}

func (f *fakeService) CheckHumanActor(ctx context.Context, actor string, allow bool) error {
	_, err := f.gate(actor, allow)
	return err
}

func (f *fakeService) CheckWriteAccess(ctx context.Context, actor string, repo domain.RepoRef) (bool, error) {
	res, err := f.resolve(actor, repo)
	return res.Allowed, err
}

type captureRecorder struct {
	decisions []adom.Decision
	recent    []adom.Decision
	lastLimit int
}

func (c *captureRecorder) Record(_ context.Context, d adom.Decision) {
	c.decisions = append(c.decisions, d)
}

func (c *captureRecorder) Recent(_ context.Context, limit int) ([]adom.Decision, error) {
	c.lastLimit = limit
	return c.recent, nil
}

func newGateServer(s gsvc.Service, rec *captureRecorder) *httptest.Server {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/gate", func(rr phttp.Router) { Register(rr, s, rec) })
	return httptest.NewServer(m)
}

func postJSON(t *testing.T, url, body string) (int, phttp.Envelope) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	var env phttp.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestActor_HumanPasses(t *testing.T) {
	s := &fakeService{gate: func(actor string, allow bool) (gsvc.GateOutcome, error) {
		return gsvc.GateOutcome{Kind: domain.KindHuman, ReportedType: "User"}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/actor", `{"actor": "human-user"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	data := env.Data.(map[string]any)
	if data["allowed"] != true || data["kind"] != "human" {
		t.Fatalf("data = %v", data)
	}
	if len(rec.decisions) != 1 || rec.decisions[0].Outcome != adom.OutcomePass {
		t.Fatalf("decisions = %+v", rec.decisions)
	}
}

func TestActor_BotRejectedWithContractString(t *testing.T) {
	s := &fakeService{gate: func(actor string, allow bool) (gsvc.GateOutcome, error) {
		return gsvc.GateOutcome{Kind: domain.KindAutomated, ReportedType: "Bot"},
			perr.Forbiddenf("Workflow initiated by non-human actor: %s (type: %s).", actor, "Bot")
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/actor", `{"actor": "bot-actor"}`)
	if status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
	want := "Workflow initiated by non-human actor: bot-actor (type: Bot)."
	if env.Error != want {
		t.Fatalf("error = %q, want %q", env.Error, want)
	}
	if len(rec.decisions) != 1 || rec.decisions[0].Outcome != adom.OutcomeReject || rec.decisions[0].ErrorText != want {
		t.Fatalf("decisions = %+v", rec.decisions)
	}
}

func TestActor_OverrideRecordsSkip(t *testing.T) {
	s := &fakeService{gate: func(actor string, allow bool) (gsvc.GateOutcome, error) {
		if !allow {
			t.Errorf("allow_automated flag not forwarded")
		}
		return gsvc.GateOutcome{Kind: domain.KindAutomated, ReportedType: "Bot", Skipped: true}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/actor", `{"actor": "claude-bot", "allow_automated": true}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if env.Data.(map[string]any)["skipped"] != true {
		t.Fatalf("data = %v", env.Data)
	}
	if rec.decisions[0].Outcome != adom.OutcomeSkip {
		t.Fatalf("decisions = %+v", rec.decisions)
	}
}

func TestActor_LookupFailureIsUnavailable(t *testing.T) {
	s := &fakeService{gate: func(actor string, allow bool) (gsvc.GateOutcome, error) {
		return gsvc.GateOutcome{}, perr.Unavailablef("Could not determine actor type for: %s", actor)
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/actor", `{"actor": "nonexistent-user"}`)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", status)
	}
	if env.Error != "Could not determine actor type for: nonexistent-user" {
		t.Fatalf("error = %q", env.Error)
	}
	if rec.decisions[0].Outcome != adom.OutcomeError {
		t.Fatalf("decisions = %+v", rec.decisions)
	}
}

func TestActor_ValidationRejectsBadLogin(t *testing.T) {
	s := &fakeService{gate: func(string, bool) (gsvc.GateOutcome, error) {
		t.Errorf("service must not be called on invalid input")
		return gsvc.GateOutcome{}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, _ := postJSON(t, srv.URL+"/gate/actor", `{"actor": "-leading-dash"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if len(rec.decisions) != 0 {
		t.Fatalf("invalid input must not be recorded: %+v", rec.decisions)
	}
}

func TestAccess_GrantedRecordsMethod(t *testing.T) {
	s := &fakeService{resolve: func(actor string, repo domain.RepoRef) (domain.Resolution, error) {
		if repo.Owner != "octo" || repo.Name != "widgets" {
			t.Errorf("repo not parsed: %+v", repo)
		}
		return domain.Resolution{Allowed: true, Method: "installation_scope", Kind: domain.KindAutomated}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/access", `{"actor": "claude-bot", "repo": "octo/widgets"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	data := env.Data.(map[string]any)
	if data["write_access"] != true || data["method"] != "installation_scope" {
		t.Fatalf("data = %v", data)
	}
	d := rec.decisions[0]
	if d.Outcome != adom.OutcomeGranted || d.Detail != "installation_scope" || d.Repo != "octo/widgets" {
		t.Fatalf("decision = %+v", d)
	}
}

func TestAccess_DeniedRecordsKind(t *testing.T) {
	s := &fakeService{resolve: func(string, domain.RepoRef) (domain.Resolution, error) {
		return domain.Resolution{Kind: domain.KindAutomated}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, env := postJSON(t, srv.URL+"/gate/access", `{"actor": "claude-bot", "repo": "octo/widgets"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if env.Data.(map[string]any)["write_access"] != false {
		t.Fatalf("data = %v", env.Data)
	}
	if rec.decisions[0].Outcome != adom.OutcomeDenied || rec.decisions[0].Detail != "automated" {
		t.Fatalf("decision = %+v", rec.decisions[0])
	}
}

func TestAccess_MalformedRepoIs400(t *testing.T) {
	s := &fakeService{resolve: func(string, domain.RepoRef) (domain.Resolution, error) {
		t.Errorf("service must not be called on invalid input")
		return domain.Resolution{}, nil
	}}
	rec := &captureRecorder{}
	srv := newGateServer(s, rec)
	defer srv.Close()

	status, _ := postJSON(t, srv.URL+"/gate/access", `{"actor": "human-user", "repo": "not-a-repo"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestAudit_LimitParam(t *testing.T) {
	rec := &captureRecorder{recent: []adom.Decision{{Actor: "human-user", Outcome: adom.OutcomePass}}}
	srv := newGateServer(&fakeService{}, rec)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/gate/audit?limit=5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if rec.lastLimit != 5 {
		t.Fatalf("limit = %d, want 5", rec.lastLimit)
	}

	bad, err := http.Get(srv.URL + "/gate/audit?limit=zero")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer bad.Body.Close()
	if bad.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", bad.StatusCode)
	}
}
