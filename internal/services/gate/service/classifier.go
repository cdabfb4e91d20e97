package service

import (
	"context"
	"strings"

	"gatehouse/internal/services/gate/domain"
)

// Classify performs a single remote lookup of the actor's account type.
// On lookup failure it returns a zero Classification plus the error; callers
// decide whether that is fatal (human gate) or a degraded-path hint (resolver)
func (s *Svc) Classify(ctx context.Context, login string) (domain.Classification, error) {
	// a "[bot]" login suffix is a convention, not a signal we trust; the
	// account-type field below is the single source of truth
	if strings.HasSuffix(login, "[bot]") {
		s.log.Debug().Str("login", login).Msg("login carries bot suffix; classifying via account type anyway")
	}

	reported, err := s.platform.UserType(ctx, login)
	if err != nil {
		return domain.Classification{Login: login, Kind: domain.KindUnknown}, err
	}

	cls := domain.Classification{
		Login:        login,
		Kind:         domain.KindOfType(reported),
		ReportedType: reported,
	}
	s.log.Info().
		Str("login", login).
		Str("reported_type", reported).
		Stringer("kind", cls.Kind).
		Msg("actor classified")
	return cls, nil
}
