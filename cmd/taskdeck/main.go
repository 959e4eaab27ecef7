package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"taskdeck/internal/config"
	"taskdeck/internal/repository"
	"taskdeck/internal/server"
	"taskdeck/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := repository.Seed(ctx, db, cfg.UserID); err != nil {
		log.Fatalf("seed: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(db, taskRepo, statsRepo)
	statsSvc := service.NewStatsService(db, statsRepo, taskRepo)
	suggestionSvc := service.NewSuggestionService()

	srv := server.New(cfg.UserID, categorySvc, taskSvc, statsSvc, suggestionSvc)

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ReconcileInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReconcileInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := statsSvc.Reconcile(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("reconcile: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule reconcile: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		log.Printf("taskdeck listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
