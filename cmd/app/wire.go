//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/reawakn/matchengine/internal/bootstrap"
	"github.com/reawakn/matchengine/internal/domain/matching"
	"github.com/reawakn/matchengine/internal/domain/scheduling"
	"github.com/reawakn/matchengine/internal/infra/config"
	httpiface "github.com/reawakn/matchengine/internal/interface/http"
	"github.com/reawakn/matchengine/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMatchingConfig,
		provideSchedulingConfig,
		providePostgresPool,
		provideSkillRepository,
		provideScoreCache,
		provideProfileRepository,
		provideMeetingRepository,
		provideEmbedder,
		matching.NewService,
		scheduling.NewService,
		wire.Bind(new(scheduling.Matcher), new(*matching.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
