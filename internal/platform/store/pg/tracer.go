package pg

import (
	"context"
	"time"

	"gatehouse/internal/platform/logger"

	"github.com/jackc/pgx/v5"
)

type ctxKey struct{}

type queryStart struct {
	sql   string
	begin time.Time
}

// tracer logs queries at debug level and slow queries at warn level
type tracer struct {
	log    logger.Logger
	logSQL bool
	slow   time.Duration
}

func newTracer(cfg Config) *tracer {
	return &tracer{
		log:    *logger.Named("pg"),
		logSQL: cfg.LogSQL,
		slow:   time.Duration(cfg.SlowMs) * time.Millisecond,
	}
}

// TraceQueryStart implements pgx.QueryTracer
func (t *tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, ctxKey{}, queryStart{sql: data.SQL, begin: time.Now()})
}

// TraceQueryEnd implements pgx.QueryTracer
func (t *tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qs, ok := ctx.Value(ctxKey{}).(queryStart)
	if !ok {
		return
	}
	took := time.Since(qs.begin)
	if data.Err != nil {
		t.log.Error().Err(data.Err).Str("sql", qs.sql).Dur("took", took).Msg("query failed")
		return
	}
	if t.slow > 0 && took >= t.slow {
		t.log.Warn().Str("sql", qs.sql).Dur("took", took).Msg("slow query")
		return
	}
	if t.logSQL {
		t.log.Debug().Str("sql", qs.sql).Dur("took", took).Msg("query")
	}
}
