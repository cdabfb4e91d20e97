// Package service contains the gate decision workflows
package service

import (
	"context"

	"gatehouse/internal/platform/logger"
	"gatehouse/internal/services/gate/domain"
)

// Service is the public service port
type Service interface {
	domain.ServicePort

	// GateActor is CheckHumanActor with the observed classification attached
	GateActor(ctx context.Context, actor string, allowAutomated bool) (GateOutcome, error)

	// Resolve is CheckWriteAccess with the granting strategy attached
	Resolve(ctx context.Context, actor string, repo domain.RepoRef) (domain.Resolution, error)
}

// GateOutcome reports what the human-actor gate observed and decided
type GateOutcome struct {
	Kind         domain.AccountKind
	ReportedType string
	Skipped      bool
}

// accessStrategy is one link in the fallback chain. Probes absorb their own
// remote errors into the tri-state decision; the resolver never sees them
type accessStrategy struct {
	name  string
	probe func(ctx context.Context, actor string, repo domain.RepoRef) (domain.AccessDecision, error)
}

// Svc implements the service port
type Svc struct {
	platform domain.PlatformPort
	log      logger.Logger

	// ordered strongest/cheapest signal first; each strategy only runs once
	// the previous one failed to grant
	strategies []accessStrategy
}

// Options control service construction
type Options struct {
	// Platform is required
	Platform domain.PlatformPort

	// Log defaults to a component-scoped child of the process logger
	Log *logger.Logger
}

// New constructs the service
func New(opt Options) *Svc {
	if opt.Platform == nil {
		panic("gate.Service requires a non nil PlatformPort")
	}
	l := opt.Log
	if l == nil {
		l = logger.Named("gate")
	}
	s := &Svc{platform: opt.Platform, log: *l}
	s.strategies = []accessStrategy{
		{name: "installation_scope", probe: s.probeInstallationScope},
		{name: "collaborator_level", probe: s.probeCollaboratorLevel},
		{name: "branch_read", probe: s.probeBranchRead},
	}
	return s
}
