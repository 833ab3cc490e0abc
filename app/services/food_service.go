package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/foodcourt/app/models"
	"github.com/shashiranjanraj/foodcourt/app/repositories"
	"github.com/shashiranjanraj/foodcourt/pkg/cache"
	"github.com/shashiranjanraj/foodcourt/pkg/logger"
	"github.com/shashiranjanraj/foodcourt/pkg/storage"
)

const (
	foodListCacheKey = "foods:list"
	foodListCacheTTL = 5 * time.Minute

	// foodImageDir is the storage prefix for dish images. Only the
	// filename is stored on the record; the frontend builds the URL.
	foodImageDir = "images"
)

// Catalog is the persistence surface FoodService needs.
type Catalog interface {
	All(ctx context.Context) ([]models.Food, error)
	FindByID(ctx context.Context, id string) (*models.Food, error)
	Create(ctx context.Context, food *models.Food) error
	Delete(ctx context.Context, id string) error
}

// FoodService manages the dish catalog and its stored images.
type FoodService struct {
	foods Catalog
	disk  storage.Disk
}

func NewFoodService(foods Catalog, disk storage.Disk) *FoodService {
	return &FoodService{foods: foods, disk: disk}
}

// List returns the full catalog, served from cache when the listing was
// read within the last few minutes.
func (s *FoodService) List(ctx context.Context) ([]models.Food, error) {
	var cached []models.Food
	if cache.Get(foodListCacheKey, &cached) {
		return cached, nil
	}

	foods, err := s.foods.All(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(foodListCacheKey, foods, foodListCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("food list cache set failed", "error", err)
	}
	return foods, nil
}

// SaveImage streams an uploaded image into storage and returns the stored
// filename: the original name prefixed with a millisecond timestamp so
// re-uploads of the same file never collide.
func (s *FoodService) SaveImage(original string, r io.Reader) (string, error) {
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(original))
	if err := s.disk.PutStream(path.Join(foodImageDir, filename), r); err != nil {
		return "", err
	}
	return filename, nil
}

// Add persists a new catalog entry. The image is expected to be already
// written to storage under the given filename.
func (s *FoodService) Add(ctx context.Context, food *models.Food) error {
	if err := s.foods.Create(ctx, food); err != nil {
		return err
	}
	cache.Forget(foodListCacheKey)
	return nil
}

// Remove deletes a catalog entry and its stored image. A missing image
// file is not an error; the record removal is what matters.
func (s *FoodService) Remove(ctx context.Context, id string) error {
	food, err := s.foods.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrFoodNotFound
	}
	if err != nil {
		return err
	}

	if food.Image != "" {
		if err := s.disk.Delete(path.Join(foodImageDir, food.Image)); err != nil {
			logger.WithCtx(ctx).Warn("food image delete failed", "image", food.Image, "error", err)
		}
	}

	if err := s.foods.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFoodNotFound
		}
		return err
	}

	cache.Forget(foodListCacheKey)
	return nil
}
