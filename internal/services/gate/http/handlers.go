// Package http provides http transport for the gate
package http

import (
	stdhttp "net/http"
	"strconv"

	perr "gatehouse/internal/platform/errors"
	phttp "gatehouse/internal/platform/net/http"
	adom "gatehouse/internal/services/audit/domain"
	asvc "gatehouse/internal/services/audit/service"
	"gatehouse/internal/services/gate/domain"
	svc "gatehouse/internal/services/gate/service"
)

// Register mounts the gate routes
func Register(r phttp.Router, s svc.Service, rec asvc.Recorder) {
	h := &handlers{svc: s, rec: rec}
	phttp.PostJSON[domain.CheckActorInput](r, "/actor", h.actor)
	phttp.PostJSON[domain.CheckAccessInput](r, "/access", h.access)
	phttp.GetJSON(r, "/audit", h.audit)
}

type handlers struct {
	svc svc.Service
	rec asvc.Recorder
}

// actor runs the human-actor gate. The 403 error text is the stable contract
// string that downstream tooling matches against
func (h *handlers) actor(r *stdhttp.Request, in domain.CheckActorInput) (any, error) {
	ctx := r.Context()
	out, err := h.svc.GateActor(ctx, in.Actor, in.AllowAutomated)

	d := adom.Decision{Check: adom.CheckHumanActor, Actor: in.Actor, Detail: out.Kind.String()}
	switch {
	case err == nil && out.Skipped:
		d.Outcome = adom.OutcomeSkip
	case err == nil:
		d.Outcome = adom.OutcomePass
	case perr.IsCode(err, perr.ErrorCodeForbidden):
		d.Outcome = adom.OutcomeReject
		d.ErrorText = err.Error()
	default:
		d.Outcome = adom.OutcomeError
		d.ErrorText = err.Error()
	}
	h.rec.Record(ctx, d)

	if err != nil {
		return nil, err
	}
	return domain.CheckActorOutput{Allowed: true, Kind: out.Kind.String(), Skipped: out.Skipped}, nil
}

// access resolves write-level access for an actor on a repository
func (h *handlers) access(r *stdhttp.Request, in domain.CheckAccessInput) (any, error) {
	ctx := r.Context()
	ref, err := domain.ParseRepoRef(in.Repo)
	if err != nil {
		return nil, err
	}

	res, err := h.svc.Resolve(ctx, in.Actor, ref)

	d := adom.Decision{Check: adom.CheckWriteAccess, Actor: in.Actor, Repo: ref.String()}
	switch {
	case err != nil:
		d.Outcome = adom.OutcomeError
		d.ErrorText = err.Error()
	case res.Allowed:
		d.Outcome = adom.OutcomeGranted
		d.Detail = res.Method
	default:
		d.Outcome = adom.OutcomeDenied
		d.Detail = res.Kind.String()
	}
	h.rec.Record(ctx, d)

	if err != nil {
		return nil, err
	}
	return domain.CheckAccessOutput{WriteAccess: res.Allowed, Method: res.Method}, nil
}

// audit serves recent decisions, newest first
func (h *handlers) audit(r *stdhttp.Request) (any, error) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, perr.InvalidArgf("invalid limit %q", s)
		}
		limit = n
	}
	return h.rec.Recent(r.Context(), limit)
}
