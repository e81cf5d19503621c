package main

import (
	"fmt"
	"log"

	"kinshare/internal/config"
	"kinshare/internal/email/noop"
	"kinshare/internal/email/ses"
	"kinshare/internal/handler"
	"kinshare/internal/port"
	"kinshare/internal/repository/postgres"
	"kinshare/internal/router"
	"kinshare/internal/service"
	s3storage "kinshare/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	collectionRepo := postgres.NewCollectionRepo(db)
	membershipRepo := postgres.NewMembershipRepo(db)
	relationRepo := postgres.NewRelationRepo(db)
	imageRepo := postgres.NewImageRepo(db)
	userDir := postgres.NewUserDirectoryRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize services
	membershipSvc := service.NewMembershipService(collectionRepo, membershipRepo, userDir, emailSender)
	relationSvc := service.NewRelationService(collectionRepo, relationRepo)
	deletionSvc := service.NewDeletionService(collectionRepo, relationRepo, imageRepo, imageRepo, userDir, s3Client, &cfg.S3)
	imageSvc := service.NewImageService(imageRepo, s3Client, &cfg.S3)

	// Initialize handlers
	collectionH := handler.NewCollectionHandler(membershipSvc, relationSvc, deletionSvc)
	imageH := handler.NewImageHandler(imageSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, collectionH, imageH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
