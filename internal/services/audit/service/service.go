// Package service contains the best-effort decision recorder
package service

import (
	"context"
	"time"

	"gatehouse/internal/platform/logger"
	"gatehouse/internal/services/audit/domain"

	"github.com/google/uuid"
)

// Recorder is the public service port
type Recorder interface{ domain.RecorderPort }

// Svc records decisions through a StorePort. Recording is best-effort:
// a failed write is logged and dropped, never surfaced to the gate
type Svc struct {
	store domain.StorePort
	log   logger.Logger
	now   func() time.Time
}

// New constructs the recorder
func New(store domain.StorePort) *Svc {
	if store == nil {
		panic("audit.Recorder requires a non nil StorePort")
	}
	return &Svc{store: store, log: *logger.Named("audit"), now: time.Now}
}

// Record implements domain.RecorderPort
func (s *Svc) Record(ctx context.Context, d domain.Decision) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.now().UTC()
	}
	if err := s.store.Insert(ctx, d); err != nil {
		s.log.Error().Err(err).
			Str("check", string(d.Check)).
			Str("actor", d.Actor).
			Msg("failed to record gate decision")
	}
}

// Recent implements domain.RecorderPort
func (s *Svc) Recent(ctx context.Context, limit int) ([]domain.Decision, error) {
	return s.store.Recent(ctx, limit)
}

// Nop is a recorder that drops everything; used when no audit store is configured
type Nop struct{}

// Record implements domain.RecorderPort
func (Nop) Record(context.Context, domain.Decision) {}

// Recent implements domain.RecorderPort
func (Nop) Recent(context.Context, int) ([]domain.Decision, error) {
	return []domain.Decision{}, nil
}
