package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirelens/hirelens/config"
	"github.com/hirelens/hirelens/internal/api/handlers"
	"github.com/hirelens/hirelens/internal/api/middleware"
	"github.com/hirelens/hirelens/internal/api/routes"
	"github.com/hirelens/hirelens/internal/cache"
	"github.com/hirelens/hirelens/internal/logger"
	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/providers/llm"
	"github.com/hirelens/hirelens/internal/providers/proxycurl"
	mongorepo "github.com/hirelens/hirelens/internal/repositories/mongo"
	pgrepo "github.com/hirelens/hirelens/internal/repositories/postgres"
	"github.com/hirelens/hirelens/internal/services"
	"github.com/hirelens/hirelens/internal/storage"
	"github.com/hirelens/hirelens/internal/workers"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	ctx := context.Background()

	// MongoDB profile cache
	mongoClient, err := config.ConnectMongo(cfg)
	if err != nil {
		l.Fatalf("MongoDB init error: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	profileRepo := mongorepo.NewProfileRepo(
		mongoClient.Database(cfg.MongoDB), cfg.MongoCollection, cfg.MongoSearchIdx)
	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		l.WithError(err).Warn("failed to ensure profile indexes")
	}

	// Optional Redis response cache
	var responseCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := config.ConnectRedis(cfg)
		if err != nil {
			l.Fatalf("Redis init error: %v", err)
		}
		responseCache = cache.NewRedisCache(rdb)
		defer rdb.Close()
	}

	// Optional Postgres search log
	var searchLogs pgrepo.SearchLogRepository
	if cfg.PostgresURI != "" {
		pg, err := config.ConnectPostgres(cfg)
		if err != nil {
			l.WithError(err).Warn("search log disabled: postgres unavailable")
		} else if err := pg.AutoMigrate(&models.SearchLog{}); err != nil {
			l.WithError(err).Warn("search log disabled: migration failed")
		} else {
			searchLogs = pgrepo.NewSearchLogRepo(pg)
		}
	}

	// Entity extraction provider
	var extractor llm.Extractor
	switch cfg.ExtractorProvider {
	case "vertex":
		extractor, err = llm.NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.VertexModel)
	default:
		extractor, err = llm.NewGroqExtractor(cfg.GroqAPIKey, cfg.GroqModel)
	}
	if err != nil {
		l.Fatalf("extractor init error: %v", err)
	}
	defer extractor.Close()

	// External profile provider
	pc := proxycurl.NewClient(cfg.ProxycurlAPIKey, cfg.ProxycurlBaseURL)

	// Optional GCS picture archival
	var archiver storage.Uploader
	if cfg.GCSBucket != "" {
		gcs, err := storage.NewGCSUploader(ctx, cfg.GCSBucket)
		if err != nil {
			l.WithError(err).Warn("picture archival disabled: gcs unavailable")
		} else {
			archiver = gcs
			defer gcs.Close()
		}
	}

	// Best-effort picture write-back worker
	workerCtx, stopWorkers := context.WithCancel(ctx)
	updater := &workers.PictureUpdater{Store: profileRepo, Logger: l}
	updater.Start(workerCtx)
	defer stopWorkers()

	var scorer services.Scorer = services.PassScorer{}
	if cfg.ScorerURL != "" {
		scorer = services.NewHTTPScorer(cfg.ScorerURL)
	}

	sourcer := services.NewSourcer(pc, cfg.HydrateTimeout, l)
	freshness := services.NewFreshness(cfg.FreshnessMaxAge)

	searchSvc := services.NewSearchService(
		extractor, profileRepo, sourcer, scorer, freshness,
		responseCache, searchLogs, l, cfg.BackfillDefault)
	creditSvc := services.NewCreditService(pc, responseCache, l)
	picSvc := services.NewPictureService(pc, responseCache, archiver, updater, l)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	var logsHandler *handlers.SearchLogHandler
	if searchLogs != nil {
		logsHandler = handlers.NewSearchLogHandler(searchLogs)
	}

	routes.RegisterRoutes(r, routes.Deps{
		Search:      handlers.NewSearchHandler(searchSvc),
		Credit:      handlers.NewCreditHandler(creditSvc),
		Picture:     handlers.NewPictureHandler(picSvc),
		Logs:        logsHandler,
		JWTSecret:   cfg.JWTSecret,
		JWTIssuer:   cfg.JWTIssuer,
		JWTAudience: cfg.JWTAudience,
	})

	l.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		l.Fatalf("server error: %v", err)
	}
}
