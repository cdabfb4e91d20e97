package service

import (
	"context"

	perr "gatehouse/internal/platform/errors"
	"gatehouse/internal/services/gate/domain"
)

// Resolve determines whether actor holds write-level access to repo.
//
// Automated identities take the fallback chain: declared installation scope,
// then collaborator permission level, then a branch-read capability probe.
// Strategies run strictly in order and short-circuit on the first grant;
// remote errors are absorbed into the chain, never surfaced.
//
// Human (or unclassifiable) identities get only the collaborator lookup, and
// a lookup failure propagates: with no fallback left, a transient platform
// error must stay distinguishable from a legitimate denial
func (s *Svc) Resolve(ctx context.Context, actor string, repo domain.RepoRef) (domain.Resolution, error) {
	if err := repo.Validate(); err != nil {
		return domain.Resolution{}, err
	}

	cls, err := s.Classify(ctx, actor)
	if err != nil {
		// identity is only a routing hint here; fall through to the stricter
		// human path rather than guessing bot
		s.log.Warn().Err(err).Str("actor", actor).Msg("classification failed, resolving without it")
	}

	if cls.Kind == domain.KindAutomated {
		return s.resolveAutomated(ctx, actor, repo, cls.Kind), nil
	}

	perm, err := s.platform.CollaboratorPermission(ctx, repo, actor)
	if err != nil {
		return domain.Resolution{}, perr.Wrapf(err, perr.ErrorCodeUnavailable,
			"could not resolve repository permission for %s on %s", actor, repo)
	}
	level := domain.ParsePermissionLevel(perm)
	res := domain.Resolution{Allowed: level.CanWrite(), Kind: cls.Kind}
	if res.Allowed {
		res.Method = "collaborator_level"
	}
	s.log.Info().
		Str("actor", actor).
		Stringer("repo", repo).
		Stringer("level", level).
		Bool("write_access", res.Allowed).
		Msg("write access resolved via collaborator level")
	return res, nil
}

// resolveAutomated reduces the strategy chain left to right
func (s *Svc) resolveAutomated(
	ctx context.Context,
	actor string,
	repo domain.RepoRef,
	kind domain.AccountKind,
) domain.Resolution {
	for _, st := range s.strategies {
		dec, err := st.probe(ctx, actor, repo)
		if err != nil {
			s.log.Warn().Err(err).
				Str("actor", actor).
				Stringer("repo", repo).
				Str("strategy", st.name).
				Msg("access strategy errored, trying next")
			dec = domain.DecisionInconclusive
		}
		s.log.Info().
			Str("actor", actor).
			Stringer("repo", repo).
			Str("strategy", st.name).
			Stringer("decision", dec).
			Msg("access strategy evaluated")
		if dec == domain.DecisionGranted {
			return domain.Resolution{Allowed: true, Method: st.name, Kind: kind}
		}
	}
	s.log.Info().
		Str("actor", actor).
		Stringer("repo", repo).
		Msg("all access strategies exhausted, denying write access")
	return domain.Resolution{Kind: kind}
}

// CheckWriteAccess implements domain.ServicePort
func (s *Svc) CheckWriteAccess(ctx context.Context, actor string, repo domain.RepoRef) (bool, error) {
	res, err := s.Resolve(ctx, actor, repo)
	if err != nil {
		return false, err
	}
	return res.Allowed, nil
}

// probeInstallationScope inspects the app installation's contents scope.
// Strongest and cheapest signal, but the lookup needs elevated credentials
// that the routine token often lacks
func (s *Svc) probeInstallationScope(
	ctx context.Context,
	_ string,
	repo domain.RepoRef,
) (domain.AccessDecision, error) {
	scope, err := s.platform.InstallationContentScope(ctx, repo)
	if err != nil {
		return domain.DecisionInconclusive, err
	}
	if domain.ParsePermissionLevel(scope).CanWrite() {
		return domain.DecisionGranted, nil
	}
	return domain.DecisionDenied, nil
}

// probeCollaboratorLevel maps the declared collaborator level through the
// permission total order
func (s *Svc) probeCollaboratorLevel(
	ctx context.Context,
	actor string,
	repo domain.RepoRef,
) (domain.AccessDecision, error) {
	perm, err := s.platform.CollaboratorPermission(ctx, repo, actor)
	if err != nil {
		return domain.DecisionInconclusive, err
	}
	if domain.ParsePermissionLevel(perm).CanWrite() {
		return domain.DecisionGranted, nil
	}
	return domain.DecisionDenied, nil
}

// probeBranchRead is the last resort: reading the default branch ref requires
// write-tier trust for app tokens, whose declared permission fields are
// unreliable. Failure at either step is a denial, not an error
func (s *Svc) probeBranchRead(
	ctx context.Context,
	_ string,
	repo domain.RepoRef,
) (domain.AccessDecision, error) {
	branch, err := s.platform.DefaultBranch(ctx, repo)
	if err != nil || branch == "" {
		return domain.DecisionDenied, nil
	}
	if _, err := s.platform.BranchRef(ctx, repo, branch); err != nil {
		return domain.DecisionDenied, nil
	}
	return domain.DecisionGranted, nil
}
