// Package module wires the gate service, its GitHub adapter, and transport
package module

import (
	gh "gatehouse/internal/adapters/github"
	phttp "gatehouse/internal/platform/net/http"
	asvc "gatehouse/internal/services/audit/service"
	ghttp "gatehouse/internal/services/gate/http"
	gsvc "gatehouse/internal/services/gate/service"
)

// Deps are the injected collaborators for the gate module
type Deps struct {
	// Recorder defaults to a no-op when nil
	Recorder asvc.Recorder
}

// Module owns the constructed gate service
type Module struct {
	svc gsvc.Service
	rec asvc.Recorder
}

// New constructs the gate module from options
func New(deps Deps, opt Options) *Module {
	ghc := gh.NewClient(gh.Options{
		BaseURL:    opt.BaseURL,
		UserAgent:  opt.UserAgent,
		Timeout:    opt.Timeout,
		TokensCSV:  opt.TokensCSV,
		MaxRetries: opt.MaxRetries,
		RetryBase:  opt.RetryBase,
	})

	rec := deps.Recorder
	if rec == nil {
		rec = asvc.Nop{}
	}

	return &Module{
		svc: gsvc.New(gsvc.Options{Platform: gh.NewPlatform(ghc)}),
		rec: rec,
	}
}

// Service exposes the gate service port for non-HTTP callers
func (m *Module) Service() gsvc.Service { return m.svc }

// MountRoutes mounts the gate routes under /gate
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/gate", func(rr phttp.Router) {
		ghttp.Register(rr, m.svc, m.rec)
	})
}
