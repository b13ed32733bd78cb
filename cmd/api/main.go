package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speciallecture/config"
	_ "speciallecture/docs"
	httpdelivery "speciallecture/internal/delivery/http"
	"speciallecture/internal/delivery/http/controllers"
	"speciallecture/internal/delivery/http/middleware"
	"speciallecture/internal/repository/postgres"
	"speciallecture/internal/services"
)

// @title Special Lecture Registration API
// @version 1.0
// @description Capacity-limited special lecture registration service.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("database setup failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to postgres")

	userRepo := postgres.NewUserRepository(db)
	lecturerRepo := postgres.NewLecturerRepository(db)
	lectureRepo := postgres.NewLectureRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	txManager := postgres.NewTxManager(db, cfg.LockTimeout)

	reservationService := services.NewReservationService(txManager)
	queryService := services.NewLectureQueryService(userRepo, lectureRepo, registrationRepo)
	catalogService := services.NewCatalogService(userRepo, lecturerRepo, lectureRepo)

	registrationController := controllers.NewRegistrationController(logger, reservationService, queryService)
	lectureController := controllers.NewLectureController(logger, queryService)
	catalogController := controllers.NewCatalogController(logger, catalogService)

	mux := httpdelivery.NewRouter(registrationController, lectureController, catalogController)
	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.AllowedOrigins, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
