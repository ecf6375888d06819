// README: Entry point; loads config, wires services, starts HTTP server and the alert refresher.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"safar/internal/ai"
	"safar/internal/config"
	httptransport "safar/internal/http"
	"safar/internal/http/handlers"
	"safar/internal/infra"
	"safar/internal/logging"
	"safar/internal/maps"
	"safar/internal/modules/queries"
	"safar/internal/modules/quota"
	"safar/internal/modules/routes"
	"safar/internal/modules/weather"
	"safar/internal/plan"
	"safar/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}

	var directions routes.Directions
	if cfg.Maps.APIKey != "" {
		ds, err := maps.NewDirectionsService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps init", zap.Error(err))
		}
		directions = ds
	} else {
		logger.Warn("GOOGLE_MAPS_API_KEY not set; live route lookups disabled")
	}

	routeSvc := routes.NewService(
		routes.NewStore(dbPool),
		routes.NewCache(redisClient),
		directions,
		logging.For(logger, logging.Routes),
	)

	weatherSvc := weather.NewService(
		weather.NewClient(cfg.Weather.APIKey),
		weather.NewStore(dbPool),
		logging.For(logger, logging.Weather),
	)

	queryStore := queries.NewStore(dbPool)
	quotaSvc := quota.NewService(quota.NewStore(dbPool))

	advisor := service.NewAdvisor(llm, routeSvc, weatherSvc, queryStore, logging.For(logger, logging.AI))
	planner := plan.NewPlanner(llm, routeSvc, weatherSvc, logging.For(logger, logging.AI))

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Fatal("firebase init", zap.Error(err))
		}
	} else {
		logger.Warn("SAFAR_FIREBASE_PROJECT_ID not set; admin endpoints are unauthenticated")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Travel:      handlers.NewTravelHandler(advisor, quotaSvc),
		Trip:        handlers.NewTripHandler(planner),
		Routes:      handlers.NewRouteHandler(routeSvc),
		Safety:      handlers.NewSafetyHandler(weatherSvc),
		Queries:     handlers.NewQueryHandler(queryStore),
		Verifier:    verifier,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         logging.For(logger, logging.API),
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go weatherSvc.RunAlertRefresher(ctx, time.Duration(cfg.Alerts.RefreshMinutes)*time.Minute)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
