package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mdejong/Flip-Budget-Backend/internal/api"
	"github.com/mdejong/Flip-Budget-Backend/internal/config"
	"github.com/mdejong/Flip-Budget-Backend/internal/database"
	"github.com/mdejong/Flip-Budget-Backend/internal/repository"
	"github.com/mdejong/Flip-Budget-Backend/internal/scheduler"
	"github.com/mdejong/Flip-Budget-Backend/internal/secrets"
	"github.com/mdejong/Flip-Budget-Backend/internal/service"
)

func main() {
	log := newLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	log.WithField("path", cfg.Database.Path).Info("connected to database")

	codec, err := secrets.NewCodec(cfg.Secrets.FernetKey)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize secrets codec")
	}

	// Create repositories
	projectRepo := repository.NewProjectRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	vendorRepo := repository.NewVendorRepository(db, codec)
	drawRepo := repository.NewDrawRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	projectService := service.NewProjectService(projectRepo, budgetRepo, drawRepo, noteRepo, photoRepo)
	budgetService := service.NewBudgetService(budgetRepo, projectRepo)
	vendorService := service.NewVendorService(vendorRepo)
	drawService := service.NewDrawService(drawRepo, projectRepo)
	noteService := service.NewNoteService(noteRepo, projectRepo)
	photoService := service.NewPhotoService(photoRepo, projectRepo, cfg.Storage.PhotoDir)
	settingsService := service.NewSettingsService(settingsRepo)
	dealService := service.NewDealService(projectRepo, budgetRepo, settingsService)
	exportService := service.NewExportService(projectService, budgetService, dealService)
	alertService := service.NewAlertService(projectRepo, budgetRepo, drawRepo, settingsService, cfg.SMTP, log)

	// Start the nightly alert sweep
	var sched *scheduler.Scheduler
	if cfg.Alerts.Enabled {
		sched = scheduler.New(alertService, log)
		if err := sched.Start(cfg.Alerts.CronSpec); err != nil {
			log.WithError(err).Fatal("failed to start scheduler")
		}
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:   systemService,
		Project:  projectService,
		Budget:   budgetService,
		Vendor:   vendorService,
		Draw:     drawService,
		Note:     noteService,
		Photo:    photoService,
		Settings: settingsService,
		Deal:     dealService,
		Export:   exportService,
	}, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	if sched != nil {
		sched.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	return log
}
