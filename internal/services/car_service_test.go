package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"testing"
	"time"

	"carrent/internal/models"
	"carrent/internal/repositories/interfaces"
	"carrent/internal/repositories/memory"
	"carrent/pkg/logger"
	"carrent/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockStorage struct {
	uploads map[string][]byte
}

func newMockStorage() *mockStorage {
	return &mockStorage{uploads: make(map[string][]byte)}
}

func (m *mockStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	data, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}
	m.uploads[request.Key] = data
	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  "https://cdn.test/" + request.Key,
		Size: int64(len(data)),
	}, nil
}

func (m *mockStorage) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	data, ok := m.uploads[key]
	if !ok {
		return nil, fmt.Errorf("no such key: %s", key)
	}
	return &storage.DownloadResponse{
		Reader: io.NopCloser(bytes.NewReader(data)),
		Size:   int64(len(data)),
	}, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	delete(m.uploads, key)
	return nil
}

func (m *mockStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (m *mockStorage) FileExists(ctx context.Context, key string) (bool, error) {
	_, ok := m.uploads[key]
	return ok, nil
}

func newCarTestService(t *testing.T) (CarService, interfaces.CarRepository, *mockStorage) {
	t.Helper()
	repo := memory.NewCarRepository()
	store := newMockStorage()
	return NewCarService(repo, store, logger.Default()), repo, store
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestCarCRUD(t *testing.T) {
	svc, _, _ := newCarTestService(t)
	ctx := context.Background()

	car := &models.Car{
		Name:         "Toyota Corolla",
		PricePerDay:  30,
		Seats:        5,
		Transmission: models.TransmissionAutomatic,
		Available:    true,
	}
	require.NoError(t, svc.CreateCar(ctx, car))
	require.False(t, car.ID.IsZero())

	fetched, err := svc.GetCar(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Corolla", fetched.Name)

	updated, err := svc.UpdateCar(ctx, car.ID, map[string]interface{}{"price_per_day": 35.0, "available": false})
	require.NoError(t, err)
	assert.Equal(t, 35.0, updated.PricePerDay)
	assert.False(t, updated.Available)

	require.NoError(t, svc.DeleteCar(ctx, car.ID))
	_, err = svc.GetCar(ctx, car.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestCarNotFound(t *testing.T) {
	svc, _, _ := newCarTestService(t)
	ctx := context.Background()

	_, err := svc.GetCar(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = svc.UpdateCar(ctx, primitive.NewObjectID(), map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	err = svc.DeleteCar(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestSearchCars(t *testing.T) {
	svc, _, _ := newCarTestService(t)
	ctx := context.Background()

	for _, car := range []*models.Car{
		{Name: "Toyota Corolla", Brand: "Toyota", Seats: 5, Transmission: models.TransmissionAutomatic, Available: true},
		{Name: "Land Cruiser", Brand: "Toyota", Seats: 7, Transmission: models.TransmissionAutomatic, Available: true},
		{Name: "Alto", Brand: "Suzuki", Description: "Budget city car", Seats: 4, Transmission: models.TransmissionManual, Available: true},
	} {
		require.NoError(t, svc.CreateCar(ctx, car))
	}

	// Case-insensitive match over name and brand
	cars, total, err := svc.SearchCars(ctx, "toyota", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, cars, 2)

	// Description matches too
	cars, _, err = svc.SearchCars(ctx, "budget", nil)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Alto", cars[0].Name)

	// Blank query lists everything
	_, total, err = svc.SearchCars(ctx, "  ", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestUploadImage(t *testing.T) {
	svc, _, store := newCarTestService(t)
	ctx := context.Background()

	car := &models.Car{Name: "Tucson", Seats: 5, Transmission: models.TransmissionAutomatic, Available: true}
	require.NoError(t, svc.CreateCar(ctx, car))

	img := testPNG(t, 800, 600)
	updated, err := svc.UploadImage(ctx, car.ID, "tucson.png", bytes.NewReader(img), int64(len(img)))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/cars/"+car.ID.Hex()+".png", updated.Image)
	assert.Equal(t, "https://cdn.test/cars/"+car.ID.Hex()+"_thumb.jpg", updated.Thumbnail)
	assert.Len(t, store.uploads, 2)
}

func TestUploadImageRejectsBadInput(t *testing.T) {
	svc, _, _ := newCarTestService(t)
	ctx := context.Background()

	car := &models.Car{Name: "Tucson", Seats: 5, Transmission: models.TransmissionAutomatic, Available: true}
	require.NoError(t, svc.CreateCar(ctx, car))

	img := testPNG(t, 10, 10)

	_, err := svc.UploadImage(ctx, car.ID, "notes.txt", bytes.NewReader(img), int64(len(img)))
	assert.ErrorIs(t, err, ErrInvalidImageType)

	_, err = svc.UploadImage(ctx, car.ID, "huge.png", bytes.NewReader(img), 50*1024*1024)
	assert.Error(t, err)

	_, err = svc.UploadImage(ctx, primitive.NewObjectID(), "tucson.png", bytes.NewReader(img), int64(len(img)))
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}
