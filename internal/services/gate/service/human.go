package service

import (
	"context"

	perr "gatehouse/internal/platform/errors"
	"gatehouse/internal/services/gate/domain"
)

// GateActor enforces that the actor is a human account unless allowAutomated
// permits app identities. Terminal outcomes: pass (nil error), skip-with-log
// (automated actor explicitly permitted), or reject (error with contract text).
// Classification failure rejects; guessing either way would be worse than
// making the caller re-trigger
func (s *Svc) GateActor(ctx context.Context, actor string, allowAutomated bool) (GateOutcome, error) {
	cls, err := s.Classify(ctx, actor)
	if err != nil {
		s.log.Error().Err(err).Str("actor", actor).Msg("actor classification failed")
		return GateOutcome{Kind: domain.KindUnknown},
			perr.Unavailablef("Could not determine actor type for: %s", actor)
	}

	if cls.Kind == domain.KindAutomated && allowAutomated {
		s.log.Info().Str("actor", actor).Msg("automated actor explicitly permitted, skipping human check")
		return GateOutcome{Kind: cls.Kind, ReportedType: cls.ReportedType, Skipped: true}, nil
	}

	if cls.Kind != domain.KindHuman {
		return GateOutcome{Kind: cls.Kind, ReportedType: cls.ReportedType},
			perr.Forbiddenf("Workflow initiated by non-human actor: %s (type: %s).", actor, cls.ReportedType)
	}

	s.log.Info().Str("actor", actor).Msg("human actor confirmed")
	return GateOutcome{Kind: cls.Kind, ReportedType: cls.ReportedType}, nil
}

// CheckHumanActor implements domain.ServicePort
func (s *Svc) CheckHumanActor(ctx context.Context, actor string, allowAutomated bool) error {
	_, err := s.GateActor(ctx, actor, allowAutomated)
	return err
}
