package service

import (
	"context"

	"github.com/google/uuid"

	"kinshare/internal/config"
	"kinshare/internal/port"
)

// ImageService exposes read access to stored photos.
type ImageService interface {
	GetDownloadURL(ctx context.Context, imageID uuid.UUID) (string, error)
	GetThumbnailURL(ctx context.Context, imageID uuid.UUID) (string, error)
}

type imageService struct {
	imageRepo port.ImageRepository
	storage   port.ObjectStorage
	cfg       *config.S3Config
}

// NewImageService creates a new ImageService implementation.
func NewImageService(imageRepo port.ImageRepository, storage port.ObjectStorage, cfg *config.S3Config) ImageService {
	return &imageService{imageRepo: imageRepo, storage: storage, cfg: cfg}
}

func (s *imageService) GetDownloadURL(ctx context.Context, imageID uuid.UUID) (string, error) {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, img.OriginalKey, s.cfg.PresignExpiry)
}

func (s *imageService) GetThumbnailURL(ctx context.Context, imageID uuid.UUID) (string, error) {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return "", err
	}
	key := img.ThumbnailKey
	if key == "" {
		key = img.OriginalKey
	}
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
}
