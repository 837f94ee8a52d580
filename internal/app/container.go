package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"resume-insight/internal/config"
	"resume-insight/internal/database"
	"resume-insight/internal/database/migration"
	dbpostgres "resume-insight/internal/database/postgres"
	"resume-insight/internal/database/seeder"
	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/infrastructure/ai/gemini"
	"resume-insight/internal/infrastructure/cache"
	"resume-insight/internal/infrastructure/grammar"
	"resume-insight/internal/infrastructure/scraper"
	"resume-insight/internal/pkg/jwt"
	"resume-insight/internal/repository"
	"resume-insight/internal/usecase"
	"resume-insight/internal/ws"
)

// Container holds every long-lived dependency, built once at startup.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Engine *scoring.Engine
	JWT    jwt.Service

	Ingest      *usecase.IngestUsecase
	Resumes     *usecase.ResumeUsecase
	Analysis    *usecase.AnalysisUsecase
	Suggestions *usecase.SuggestionUsecase
	Jobs        *usecase.JobUsecase
	Matches     *usecase.MatchUsecase
	Analytics   *usecase.AnalyticsUsecase
	Auth        *usecase.AuthUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	if err := seeder.Default().Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run seeders: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	generator, err := gemini.NewGenerator(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	extractor := gemini.NewExtractor(generator)
	suggester := gemini.NewSuggester(generator)

	grammarClient := grammar.NewClient(cfg.Grammar.BaseURL, cfg.Grammar.Language, cfg.Grammar.Timeout)

	resumeRepo := repository.NewPostgresResumeRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	scoreRepo := repository.NewPostgresScoreRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	// The seeded catalog is the matching universe for the generic skills
	// score. Loaded once; re-seeding requires a restart. Skills observed on
	// uploaded resumes never enter this set.
	referenceSkills, err := skillRepo.ReferenceNames(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load skill catalog: %w", err)
	}

	engine, err := scoring.NewEngine(scoring.Weights{
		Skills:      cfg.Scoring.SkillsWeight,
		Readability: cfg.Scoring.ReadabilityWeight,
		Grammar:     cfg.Scoring.GrammarWeight,
	}, referenceSkills, grammarClient, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build scoring engine: %w", err)
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn,
	)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Engine: engine,
		JWT:    jwtSvc,
	}

	// Analytics first: the mutating usecases invalidate its cached dashboard.
	c.Analytics = usecase.NewAnalyticsUsecase(resumeRepo, jobRepo, scoreRepo, skillRepo, redisCache, logger)
	c.Ingest = usecase.NewIngestUsecase(resumeRepo, extractor, c.Analytics, logger)
	c.Resumes = usecase.NewResumeUsecase(resumeRepo, c.Analytics, logger)
	c.Analysis = usecase.NewAnalysisUsecase(resumeRepo, scoreRepo, engine, notifier, c.Analytics, logger)
	c.Suggestions = usecase.NewSuggestionUsecase(resumeRepo, engine, suggester, logger)
	c.Jobs = usecase.NewJobUsecase(jobRepo, scraper.NewJobPageFetcher(), extractor, c.Analytics, logger)
	c.Matches = usecase.NewMatchUsecase(resumeRepo, jobRepo, matchRepo, engine, logger)
	c.Auth = usecase.NewAuthUsecase(userRepo, jwtSvc, logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
