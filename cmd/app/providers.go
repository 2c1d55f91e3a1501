package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/reawakn/matchengine/internal/domain/matching"
	"github.com/reawakn/matchengine/internal/domain/scheduling"
	"github.com/reawakn/matchengine/internal/infra/config"
	"github.com/reawakn/matchengine/internal/infra/embedder"
	"github.com/reawakn/matchengine/internal/infra/matchstore"
	"github.com/reawakn/matchengine/internal/infra/meetingrepo"
	"github.com/reawakn/matchengine/internal/infra/profilerepo"
	"github.com/reawakn/matchengine/internal/infra/skillrepo"
)

func provideMatchingConfig(cfg *config.Config) matching.Config {
	return matching.Config{
		MatchThreshold:      cfg.Matching.Threshold,
		DefaultSessionCount: cfg.Matching.DefaultSessionCount,
		CacheTTL:            cfg.Matching.CacheTTL,
	}
}

func provideSchedulingConfig(cfg *config.Config) scheduling.Config {
	return scheduling.Config{
		HorizonDays:       cfg.Scheduling.HorizonDays,
		DefaultTimezone:   cfg.Scheduling.DefaultTimezone,
		DefaultChronotype: scheduling.Chronotype(cfg.Scheduling.DefaultChronotype),
		Rank: scheduling.RankConfig{
			TimeGapWeight:    cfg.Scheduling.Rank.TimeGapWeight,
			ChronotypeWeight: cfg.Scheduling.Rank.ChronotypeWeight,
			DensityWeight:    cfg.Scheduling.Rank.DensityWeight,
			HalfLife:         cfg.Scheduling.Rank.HalfLife,
			MaxLead:          cfg.Scheduling.Rank.MaxLead,
			IdealGapMinutes:  cfg.Scheduling.Rank.IdealGapMinutes,
			ClampGapMinutes:  cfg.Scheduling.Rank.ClampGapMinutes,
			OpenGapMinutes:   cfg.Scheduling.Rank.OpenGapMinutes,
			DecayGapMinutes:  cfg.Scheduling.Rank.DecayGapMinutes,
		},
		Plan: scheduling.PlanConfig{
			IdealSessionGap: cfg.Scheduling.Plan.IdealSessionGap,
			GapTolerance:    cfg.Scheduling.Plan.GapTolerance,
			GapDecay:        cfg.Scheduling.Plan.GapDecay,
			GapWeight:       cfg.Scheduling.Plan.GapWeight,
			ScoreWeight:     cfg.Scheduling.Plan.ScoreWeight,
		},
	}
}

// providePostgresPool returns nil when postgres is not configured or not
// reachable; repository providers fall back to memory implementations.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideSkillRepository(pool *pgxpool.Pool) matching.SkillRepository {
	if pool == nil {
		return skillrepo.NewMemoryRepository()
	}
	return skillrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(pool *pgxpool.Pool) scheduling.ProfileRepository {
	if pool == nil {
		return profilerepo.NewMemoryRepository()
	}
	return profilerepo.NewPostgresRepository(pool)
}

func provideMeetingRepository(pool *pgxpool.Pool) scheduling.MeetingRepository {
	if pool == nil {
		return meetingrepo.NewMemoryRepository()
	}
	return meetingrepo.NewPostgresRepository(pool)
}

func provideScoreCache(cfg *config.Config, logger *slog.Logger) matching.ScoreCache {
	if cfg.Storage.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return matchstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return matchstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("valkey score cache enabled", "addr", cfg.Storage.Valkey.Addr)
			return matchstore.NewValkeyStore(client, "match")
		}
	}
	return matchstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Storage.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Storage.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Storage.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideEmbedder(cfg *config.Config, logger *slog.Logger) embedder.Embedder {
	apiKey := strings.TrimSpace(cfg.Embedding.APIKey)
	if apiKey == "" {
		logger.Info("embedding api key not set, using deterministic embedder")
		return embedder.NewDeterministicEmbedder(cfg.Embedding.Dim)
	}
	client, err := embedder.NewOpenAIEmbedder(apiKey, cfg.Embedding.BaseURL, cfg.Embedding.Model, logger)
	if err != nil {
		logger.Error("failed to create embedding client, using deterministic embedder", "error", err)
		return embedder.NewDeterministicEmbedder(cfg.Embedding.Dim)
	}
	return client
}
