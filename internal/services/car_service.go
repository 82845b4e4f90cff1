package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/utils"
	"carrent/pkg/logger"
	"carrent/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarService interface {
	CreateCar(ctx context.Context, car *models.Car) error
	GetCar(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	UpdateCar(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error)
	DeleteCar(ctx context.Context, id primitive.ObjectID) error
	ListCars(ctx context.Context, params *utils.PaginationParams) ([]*models.Car, int64, error)
	SearchCars(ctx context.Context, query string, params *utils.PaginationParams) ([]*models.Car, int64, error)
	UploadImage(ctx context.Context, id primitive.ObjectID, filename string, reader io.Reader, size int64) (*models.Car, error)
}

type carService struct {
	carRepo interfaces.CarRepository
	storage storage.StorageProvider
	logger  *logger.Logger
}

func NewCarService(carRepo interfaces.CarRepository, storageProvider storage.StorageProvider, log *logger.Logger) CarService {
	return &carService{
		carRepo: carRepo,
		storage: storageProvider,
		logger:  log,
	}
}

func (s *carService) CreateCar(ctx context.Context, car *models.Car) error {
	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}
	s.logger.WithField("car_id", car.ID.Hex()).Info("Car created")
	return nil
}

func (s *carService) GetCar(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) UpdateCar(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error) {
	if err := s.carRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.carRepo.GetByID(ctx, id)
}

// DeleteCar removes the car only. Existing bookings keep their car id as a
// dangling reference.
func (s *carService) DeleteCar(ctx context.Context, id primitive.ObjectID) error {
	return s.carRepo.Delete(ctx, id)
}

func (s *carService) ListCars(ctx context.Context, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	return s.carRepo.List(ctx, params)
}

func (s *carService) SearchCars(ctx context.Context, query string, params *utils.PaginationParams) ([]*models.Car, int64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.carRepo.List(ctx, params)
	}
	return s.carRepo.Search(ctx, query, params)
}

// UploadImage stores the full image plus a generated thumbnail and records
// their URLs on the car.
func (s *carService) UploadImage(ctx context.Context, id primitive.ObjectID, filename string, reader io.Reader, size int64) (*models.Car, error) {
	if !utils.IsAllowedImageType(filename) {
		return nil, ErrInvalidImageType
	}
	if size > utils.MaxImageSize {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", utils.MaxImageSize)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(reader, utils.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > utils.MaxImageSize {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", utils.MaxImageSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType := mime.TypeByExtension(ext)
	key := fmt.Sprintf("cars/%s%s", car.ID.Hex(), ext)

	uploaded, err := s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	updates := map[string]interface{}{"image": uploaded.URL}

	thumb, err := utils.MakeThumbnail(bytes.NewReader(data), filename, utils.ThumbnailWidth)
	if err != nil {
		s.logger.WithError(err).WithField("car_id", car.ID.Hex()).Warn("Thumbnail generation failed")
	} else {
		thumbKey := fmt.Sprintf("cars/%s_thumb.jpg", car.ID.Hex())
		uploadedThumb, err := s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         thumbKey,
			Reader:      bytes.NewReader(thumb),
			ContentType: "image/jpeg",
			Size:        int64(len(thumb)),
		})
		if err != nil {
			s.logger.WithError(err).WithField("car_id", car.ID.Hex()).Warn("Thumbnail upload failed")
		} else {
			updates["thumbnail"] = uploadedThumb.URL
		}
	}

	if err := s.carRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.carRepo.GetByID(ctx, id)
}
