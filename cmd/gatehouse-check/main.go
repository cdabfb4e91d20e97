// gatehouse-check runs both gate checks once and reports via exit code,
// which makes it usable as a CI job step:
//
//	0 write access granted
//	1 write access denied
//	2 rejected by the human-actor gate
//	3 no decision could be rendered
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"gatehouse/internal/platform/config"
	"gatehouse/internal/platform/logger"
	"gatehouse/internal/services/gate/domain"
	gatemod "gatehouse/internal/services/gate/module"
)

func main() {
	_ = godotenv.Load()

	var (
		fActor = flag.String("actor", "", "login of the account that triggered the workflow")
		fRepo  = flag.String("repo", "", "target repository as owner/name")
		fAllow = flag.Bool("allow-automated", false, "permit automated (app/bot) actors")
	)
	flag.Parse()

	l := logger.Named("check")

	actor := *fActor
	if actor == "" {
		actor = config.New().Prefix("GATE_").MayString("ACTOR", "")
	}
	repoFull := *fRepo
	if repoFull == "" {
		repoFull = config.New().Prefix("GATE_").MayString("REPO", "")
	}
	if actor == "" || repoFull == "" {
		l.Error().Msg("both -actor and -repo are required")
		os.Exit(3)
	}

	repo, err := domain.ParseRepoRef(repoFull)
	if err != nil {
		l.Error().Err(err).Msg("invalid repository reference")
		os.Exit(3)
	}

	mod := gatemod.New(gatemod.Deps{}, gatemod.FromConfig(config.New()))
	svc := mod.Service()
	ctx := context.Background()

	if err := svc.CheckHumanActor(ctx, actor, *fAllow); err != nil {
		l.Error().Str("actor", actor).Msg(err.Error())
		os.Exit(2)
	}

	res, err := svc.Resolve(ctx, actor, repo)
	if err != nil {
		l.Error().Err(err).Str("actor", actor).Stringer("repo", repo).Msg("could not resolve write access")
		os.Exit(3)
	}
	if !res.Allowed {
		l.Warn().Str("actor", actor).Stringer("repo", repo).Msg("write access denied")
		os.Exit(1)
	}
	l.Info().Str("actor", actor).Stringer("repo", repo).Str("method", res.Method).Msg("write access granted")
}
