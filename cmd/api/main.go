package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhive/tutor_marketplace/internal/app"
	"github.com/tutorhive/tutor_marketplace/internal/config"
	"github.com/tutorhive/tutor_marketplace/internal/controller/handlers"
	"github.com/tutorhive/tutor_marketplace/internal/repository"
	"github.com/tutorhive/tutor_marketplace/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Применяем миграции до старта сервера
	migrator, err := app.NewMigrator(pool)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	if err := migrator.Run(ctx); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	migrator.Close()

	studentRepo := repository.NewStudentRepository(pool)
	tutorRepo := repository.NewTutorRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	bookingService := service.NewBookingService(bookingRepo, studentRepo, logger)
	tutorService := service.NewTutorService(tutorRepo, slotRepo, logger)
	studentService := service.NewStudentService(studentRepo, logger)
	availabilityService := service.NewAvailabilityService(slotRepo, tutorRepo, logger)

	server := app.NewServer(cfg, &app.Handlers{
		Bookings:     handlers.NewBookingHandler(bookingService),
		Tutors:       handlers.NewTutorHandler(tutorService),
		Students:     handlers.NewStudentHandler(studentService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
	}, logger)

	if err := server.Run(ctx); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
