package main

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"gatehouse/internal/platform/config"
	"gatehouse/internal/platform/logger"
	phttp "gatehouse/internal/platform/net/http"
	"gatehouse/internal/platform/net/middleware"
	"gatehouse/internal/platform/store/pg"

	auditrepo "gatehouse/internal/services/audit/repo"
	auditsvc "gatehouse/internal/services/audit/service"
	gatemod "gatehouse/internal/services/gate/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("API_")
	auditCfg := root.Prefix("AUDIT_")

	// bring up logging early
	l := logger.Get()

	// audit store is optional; decisions are dropped when unset
	var rec auditsvc.Recorder = auditsvc.Nop{}
	if dburl := auditCfg.MayString("DBURL", ""); dburl != "" {
		db, err := pg.Open(context.Background(), pg.Config{
			URL:      dburl,
			MaxConns: int32(auditCfg.MayInt("MAX_CONNS", 4)),
			SlowMs:   auditCfg.MayInt("SLOW_MS", 500),
			LogSQL:   auditCfg.MayBool("LOG_SQL", false),
		})
		if err != nil {
			l.Panic().Err(err).Msg("pg.Open failed")
		}
		defer db.Close()
		store := auditrepo.NewPG(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			l.Panic().Err(err).Msg("audit schema setup failed")
		}
		rec = auditsvc.New(store)
	} else {
		l.Warn().Msg("AUDIT_DBURL unset; gate decisions will not be recorded")
	}

	mod := gatemod.New(gatemod.Deps{Recorder: rec}, gatemod.FromConfig(root))

	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
		m.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		}))
		m.Use(middleware.Heartbeat("/healthz"))
	})

	srv.Router().Route("/api/v1", func(api phttp.Router) {
		mod.MountRoutes(api)
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
